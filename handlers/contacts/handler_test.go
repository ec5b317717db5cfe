package contacts

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"testing"
	"time"

	"amusicbible-backend/models"
	"amusicbible-backend/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

type fakeMailer struct {
	sent []string
	err  error
}

func (m *fakeMailer) Send(to string, message []byte) error {
	m.sent = append(m.sent, to)
	return m.err
}

func withUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func setupRouter(h *Handler) *gin.Engine {
	r := testutils.SetupTestRouter()
	r.POST("/api/contact/create", withUser("user-1"), h.CreateContact)
	r.GET("/api/contact", h.GetContacts)
	r.PATCH("/api/contact/:contactId/respond", h.MarkResponded)
	return r
}

const validContact = `{
	"name": "Sri Ram",
	"email": "sri.ram@example.com",
	"subject": "Download issue",
	"message": "My purchased track does not play."
}`

func TestCreateContact_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "contacts" (.+)`).
		WithArgs(sqlmock.AnyArg(), "user-1", "Sri Ram", "sri.ram@example.com", "Download issue",
			"My purchased track does not play.", false, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mailer := &fakeMailer{}
	r := setupRouter(New(mailer))
	resp := testutils.JSONRequest(r, http.MethodPost, "/api/contact/create", validContact, "")

	assert.Equal(t, http.StatusCreated, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Contact request submitted successfully", respBody["message"])
	assert.NotEmpty(t, respBody["id"])
	assert.Equal(t, []string{"sri.ram@example.com"}, mailer.sent)
}

func TestCreateContact_MailFailureIsNotFatal(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "contacts" (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := setupRouter(New(&fakeMailer{err: errors.New("smtp down")}))
	resp := testutils.JSONRequest(r, http.MethodPost, "/api/contact/create", validContact, "")

	assert.Equal(t, http.StatusCreated, resp.Code)
}

func TestCreateContact_EmptyName(t *testing.T) {
	r := setupRouter(New(&fakeMailer{}))
	resp := testutils.JSONRequest(r, http.MethodPost, "/api/contact/create",
		`{"name":"","email":"sri.ram@example.com","subject":"Hi","message":"Hello"}`, "")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "Invalid input")
}

func TestCreateContact_DatabaseError(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "contacts" (.+)`).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	mailer := &fakeMailer{}
	r := setupRouter(New(mailer))
	resp := testutils.JSONRequest(r, http.MethodPost, "/api/contact/create", validContact, "")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.NotContains(t, resp.Body.String(), "connection reset")
	assert.Empty(t, mailer.sent)
}

func TestGetContacts(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "contacts" ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "subject", "responded", "created_at"}).
			AddRow("c-2", "user-1", "Sri Ram", "Second", false, time.Now()).
			AddRow("c-1", "user-1", "Sri Ram", "First", true, time.Now().Add(-time.Hour)))

	r := setupRouter(New(&fakeMailer{}))
	resp := testutils.JSONRequest(r, http.MethodGet, "/api/contact", "", "")

	assert.Equal(t, http.StatusOK, resp.Code)
	var contacts []models.Contact
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &contacts))
	assert.Len(t, contacts, 2)
	assert.Equal(t, "c-2", contacts[0].ID)
}

func TestMarkResponded(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "contacts" WHERE id = \$1`).
		WithArgs("c-1", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "responded"}).AddRow("c-1", false))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "contacts" SET "responded"=\$1,"updated_at"=\$2 WHERE (.+)`).
		WithArgs(true, sqlmock.AnyArg(), "c-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := setupRouter(New(&fakeMailer{}))
	resp := testutils.JSONRequest(r, http.MethodPatch, "/api/contact/c-1/respond", "", "")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"responded":true`)
}

func TestMarkResponded_NotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "contacts" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	r := setupRouter(New(&fakeMailer{}))
	resp := testutils.JSONRequest(r, http.MethodPatch, "/api/contact/missing/respond", "", "")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
