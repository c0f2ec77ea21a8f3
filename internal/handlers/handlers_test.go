package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/n-tawaki/quiz-system/internal/models"
	"github.com/n-tawaki/quiz-system/internal/services"
	"github.com/n-tawaki/quiz-system/internal/session"
	"github.com/n-tawaki/quiz-system/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testApp struct {
	router *gin.Engine
	db     *gorm.DB
	hub    *ws.Hub
	holder *session.Holder
}

// newTestApp wires the full route table over an in-memory database, the
// same shape as cmd/server.
func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Question{}, &models.Answer{}))

	hub := ws.NewHub()
	holder := session.NewHolder()

	stateHandler := NewStateHandler(services.NewStateService(db, holder), hub)
	questionHandler := NewQuestionHandler(services.NewQuestionService(db))
	answerHandler := NewAnswerHandler(services.NewAnswerService(db))
	statsHandler := NewStatsHandler(services.NewStatsService(db))
	wsHandler := NewWSHandler(hub, holder)

	r := gin.New()
	r.GET("/ws", wsHandler.HandleWebSocket)
	r.GET("/state", stateHandler.GetState)
	r.POST("/state", stateHandler.SetState)
	r.GET("/questions", questionHandler.ListQuestions)
	r.POST("/answers", answerHandler.SubmitAnswer)
	r.GET("/scores/:user_name", statsHandler.GetScore)
	r.GET("/answers/:user_name/:question_id", statsHandler.GetUserAnswer)
	r.GET("/answer_check/:question_id", statsHandler.GetChoiceDistribution)
	r.GET("/ranking", statsHandler.GetRanking)
	r.GET("/correct_answer/:question_id", questionHandler.GetCorrectAnswer)

	return &testApp{router: r, db: db, hub: hub, holder: holder}
}

func (a *testApp) seedQuestion(t *testing.T, correct string) models.Question {
	t.Helper()

	q := models.Question{
		QuestionText:  "What is 2+2?",
		ChoiceA:       "3",
		ChoiceB:       "4",
		ChoiceC:       "5",
		ChoiceD:       "6",
		CorrectAnswer: correct,
	}
	require.NoError(t, a.db.Create(&q).Error)
	return q
}

func (a *testApp) request(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func TestGetState_Default(t *testing.T) {
	app := newTestApp(t)

	w := app.request(t, http.MethodGet, "/state", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"state":"WAITING","question_id":0}`, w.Body.String())
}

func TestSetState_UpdatesAndEchoes(t *testing.T) {
	app := newTestApp(t)
	q := app.seedQuestion(t, "1")

	w := app.request(t, http.MethodPost, "/state", `{"state":"ANSWERING","question_id":1}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"success":true,"state":"ANSWERING","question_id":1}`, w.Body.String())

	var got models.Question
	require.NoError(t, app.db.First(&got, q.ID).Error)
	require.NotNil(t, got.StartTime, "entering ANSWERING persists a start time")

	w = app.request(t, http.MethodGet, "/state", "")
	require.JSONEq(t, `{"state":"ANSWERING","question_id":1}`, w.Body.String())
}

func TestSetState_MalformedBody(t *testing.T) {
	app := newTestApp(t)

	w := app.request(t, http.MethodPost, "/state", `{"question_id":1}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"success":false,"error":"invalid request body"}`, w.Body.String())
}

func TestSubmitAnswer_Flow(t *testing.T) {
	app := newTestApp(t)
	app.seedQuestion(t, "2")

	w := app.request(t, http.MethodPost, "/answers",
		`{"user_name":"alice","question_id":1,"selected_choice":"2"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"success":true,"is_correct":true}`, w.Body.String())

	// Second submission for the same question is rejected.
	w = app.request(t, http.MethodPost, "/answers",
		`{"user_name":"alice","question_id":1,"selected_choice":"3"}`)
	require.Equal(t, http.StatusConflict, w.Code)
	require.JSONEq(t, `{"success":false,"error":"already answered"}`, w.Body.String())
}

func TestSubmitAnswer_QuestionNotFound(t *testing.T) {
	app := newTestApp(t)

	w := app.request(t, http.MethodPost, "/answers",
		`{"user_name":"alice","question_id":42,"selected_choice":"1"}`)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"success":false,"error":"question not found"}`, w.Body.String())
}

func TestSubmitAnswer_MalformedBody(t *testing.T) {
	app := newTestApp(t)
	app.seedQuestion(t, "1")

	for _, body := range []string{
		`{"question_id":1,"selected_choice":"1"}`,
		`{"user_name":"alice","question_id":1,"selected_choice":"5"}`,
		`not json`,
	} {
		w := app.request(t, http.MethodPost, "/answers", body)
		require.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
		require.JSONEq(t, `{"success":false,"error":"invalid request body"}`, w.Body.String())
	}
}

func TestListQuestions_HidesCorrectAnswer(t *testing.T) {
	app := newTestApp(t)
	app.seedQuestion(t, "2")

	w := app.request(t, http.MethodGet, "/questions", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"question_text":"What is 2+2?"`)
	require.NotContains(t, w.Body.String(), "correct")
	require.NotContains(t, w.Body.String(), "start_time")
}

func TestGetScore(t *testing.T) {
	app := newTestApp(t)
	app.seedQuestion(t, "1")
	app.seedQuestion(t, "2")

	app.request(t, http.MethodPost, "/answers", `{"user_name":"alice","question_id":1,"selected_choice":"1"}`)
	app.request(t, http.MethodPost, "/answers", `{"user_name":"alice","question_id":2,"selected_choice":"1"}`)

	w := app.request(t, http.MethodGet, "/scores/alice", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"user_name":"alice","score":1}`, w.Body.String())
}

func TestGetUserAnswer(t *testing.T) {
	app := newTestApp(t)
	app.seedQuestion(t, "1")

	w := app.request(t, http.MethodGet, "/answers/alice/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"answered":false}`, w.Body.String())

	app.request(t, http.MethodPost, "/answers", `{"user_name":"alice","question_id":1,"selected_choice":"3"}`)

	w = app.request(t, http.MethodGet, "/answers/alice/1", "")
	require.JSONEq(t, `{"answered":true,"selected_choice":"3"}`, w.Body.String())
}

func TestChoiceDistribution_EmptyQuestion(t *testing.T) {
	app := newTestApp(t)
	app.seedQuestion(t, "1")

	w := app.request(t, http.MethodGet, "/answer_check/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[
		{"choice":"1","count":0},
		{"choice":"2","count":0},
		{"choice":"3","count":0},
		{"choice":"4","count":0}
	]`, w.Body.String())
}

func TestGetCorrectAnswer(t *testing.T) {
	app := newTestApp(t)
	app.seedQuestion(t, "3")

	w := app.request(t, http.MethodGet, "/correct_answer/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `["3"]`, w.Body.String())

	w = app.request(t, http.MethodGet, "/correct_answer/99", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "null", w.Body.String())
}

func dialWS(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readWS(t *testing.T, conn *websocket.Conn) string {
	t.Helper()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	return string(data)
}

func TestWebSocket_SnapshotAndBroadcast(t *testing.T) {
	app := newTestApp(t)
	app.seedQuestion(t, "1")
	srv := httptest.NewServer(app.router)
	defer srv.Close()

	c1 := dialWS(t, srv)
	c2 := dialWS(t, srv)

	// Connect snapshot carries the phase only.
	require.JSONEq(t, `{"state":"WAITING"}`, readWS(t, c1))
	require.JSONEq(t, `{"state":"WAITING"}`, readWS(t, c2))

	resp, err := http.Post(srv.URL+"/state", "application/json",
		strings.NewReader(`{"state":"ANSWERING","question_id":1}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	m1 := readWS(t, c1)
	m2 := readWS(t, c2)
	require.Equal(t, m1, m2, "all clients receive the identical payload")
	require.JSONEq(t, `{"state":"ANSWERING","question_id":1}`, m1)
}

func TestWebSocket_ReconnectSeesCurrentPhase(t *testing.T) {
	app := newTestApp(t)
	app.seedQuestion(t, "1")
	srv := httptest.NewServer(app.router)
	defer srv.Close()

	c1 := dialWS(t, srv)
	require.JSONEq(t, `{"state":"WAITING"}`, readWS(t, c1))
	c1.Close()

	resp, err := http.Post(srv.URL+"/state", "application/json",
		strings.NewReader(`{"state":"ANSWERING","question_id":1}`))
	require.NoError(t, err)
	resp.Body.Close()

	c2 := dialWS(t, srv)
	require.JSONEq(t, `{"state":"ANSWERING"}`, readWS(t, c2), "snapshot reflects the phase at reconnect time")
}

func TestWebSocket_InboundMessagesIgnored(t *testing.T) {
	app := newTestApp(t)
	srv := httptest.NewServer(app.router)
	defer srv.Close()

	c1 := dialWS(t, srv)
	require.JSONEq(t, `{"state":"WAITING"}`, readWS(t, c1))

	require.NoError(t, c1.WriteMessage(websocket.TextMessage, []byte("ping")))

	// The connection stays registered and still receives broadcasts.
	resp, err := http.Post(srv.URL+"/state", "application/json",
		strings.NewReader(`{"state":"WAITING","question_id":0}`))
	require.NoError(t, err)
	resp.Body.Close()

	require.JSONEq(t, `{"state":"WAITING","question_id":0}`, readWS(t, c1))
}
