package blogs

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"testing"

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

func setupRouter() *gin.Engine {
	r := testutils.SetupTestRouter()
	r.POST("/api/blog/create", CreateBlog)
	r.GET("/api/blog", GetAllBlogs)
	r.GET("/api/blog/:id", GetBlogByID)
	return r
}

func TestCreateBlog_WithoutCategories(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "blogs" (.+)`).
		WithArgs(sqlmock.AnyArg(), "Psalms in modern worship", "Body", "", "Sri", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp := testutils.JSONRequest(setupRouter(), http.MethodPost, "/api/blog/create",
		`{"title":"Psalms in modern worship","content":"Body","author":"Sri"}`, "")

	assert.Equal(t, http.StatusCreated, resp.Code)
	var blog models.Blog
	json.Unmarshal(resp.Body.Bytes(), &blog)
	assert.NotEmpty(t, blog.ID)
	assert.Empty(t, blog.Categories)
}

func TestCreateBlog_UnknownCategory(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "categories" WHERE id IN \(\$1,\$2\)`).
		WithArgs("cat-1", "cat-404").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("cat-1", "Hymns"))

	resp := testutils.JSONRequest(setupRouter(), http.MethodPost, "/api/blog/create",
		`{"title":"T","content":"C","categories":["cat-1","cat-404"]}`, "")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "Unknown category")
}

func TestCreateBlog_MissingTitle(t *testing.T) {
	resp := testutils.JSONRequest(setupRouter(), http.MethodPost, "/api/blog/create", `{"content":"C"}`, "")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestGetAllBlogs_FilterByCategory(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "blogs" JOIN blog_categories ON blogs.id = blog_categories.blog_id WHERE blog_categories.category_id = \$1`).
		WithArgs("cat-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).AddRow("blog-1", "Psalms"))
	mock.ExpectQuery(`SELECT \* FROM "blog_categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"blog_id", "category_id"}).AddRow("blog-1", "cat-1"))
	mock.ExpectQuery(`SELECT \* FROM "categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("cat-1", "Hymns"))

	resp := testutils.JSONRequest(setupRouter(), http.MethodGet, "/api/blog?category=cat-1", "", "")

	assert.Equal(t, http.StatusOK, resp.Code)
	var blogs []models.Blog
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &blogs))
	assert.Len(t, blogs, 1)
	assert.Equal(t, "Hymns", blogs[0].Categories[0].Name)
}

func TestGetBlogByID_NotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "blogs" WHERE id = \$1`).
		WithArgs("missing", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	resp := testutils.JSONRequest(setupRouter(), http.MethodGet, "/api/blog/missing", "", "")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestUniq(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, uniq([]string{"a", "b", "a"}))
}
