package router

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/kdam/portfolio/internal/constant"
	"github.com/kdam/portfolio/internal/database"
	"github.com/kdam/portfolio/internal/models"
	"github.com/kdam/portfolio/internal/repository"
	"github.com/kdam/portfolio/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testPassword = "password123"

type testSite struct {
	engine   *gin.Engine
	db       *gorm.DB
	users    *repository.UserRepository
	pages    *repository.PageRepository
	photos   *repository.PhotoRepository
	comments *repository.CommentRepository
	media    string
}

func newTestSite(t *testing.T) *testSite {
	t.Helper()
	constant.Secret = "router-test-secret"

	db, err := database.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	require.NoError(t, db.Create(&[]models.Role{
		{ID: constant.RoleAdminID, Name: constant.RoleAdmin},
		{ID: constant.RoleUserID, Name: constant.RoleUser},
	}).Error)

	users := repository.NewUserRepository(db, &services.BcryptHasher{Cost: 4})
	for _, u := range []struct {
		login string
		role  uint
	}{{"administrator", constant.RoleAdminID}, {"regular", constant.RoleUserID}, {"another", constant.RoleUserID}} {
		user := &models.User{
			Login:  u.login,
			RoleID: u.role,
			Info:   models.UserInfo{Name: "Name " + u.login, Mail: u.login + "@example.com"},
		}
		require.NoError(t, users.Save(context.Background(), user, testPassword))
	}

	cfg := services.DefaultConfig()
	cfg.Security.Secret = constant.Secret
	cfg.Janitor.Enabled = false
	cfg.Media.Dir = t.TempDir()

	controllers, err := RegisterControllers(db, cfg)
	require.NoError(t, err)

	return &testSite{
		engine:   Setup(controllers, cfg),
		db:       db,
		users:    users,
		pages:    repository.NewPageRepository(db),
		photos:   repository.NewPhotoRepository(db),
		comments: repository.NewCommentRepository(db),
		media:    cfg.Media.Dir,
	}
}

func (s *testSite) do(req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req.Header.Set("Accept-Language", "en")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	return rec
}

func (s *testSite) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	return s.do(httptest.NewRequest(http.MethodGet, path, nil), cookies...)
}

func (s *testSite) post(path string, values url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return s.do(req, cookies...)
}

func (s *testSite) login(t *testing.T, login string) *http.Cookie {
	t.Helper()
	rec := s.post("/auth/login", url.Values{"login": {login}, "password": {testPassword}})
	require.Equal(t, http.StatusFound, rec.Code)
	cookie := findCookie(rec, constant.AuthCookie)
	require.NotNil(t, cookie)
	require.NotEmpty(t, cookie.Value)
	return cookie
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestAccessControl(t *testing.T) {
	site := newTestSite(t)

	rec := site.get("/admin")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/auth/login", rec.Header().Get("Location"))

	rec = site.get("/portfolio")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No photos yet.")

	rec = site.get("/no/such/page")
	assert.Equal(t, http.StatusFound, rec.Code, "anonymous visitors are sent to login first")

	user := site.login(t, "regular")
	rec = site.get("/admin", user)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "You do not have access to this page.")

	admin := site.login(t, "administrator")
	rec = site.get("/admin", admin)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = site.get("/no/such/page", admin)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page not found.")
}

func TestLogin_BadCredentials(t *testing.T) {
	site := newTestSite(t)

	rec := site.post("/auth/login", url.Values{"login": {"regular"}, "password": {"wrong-password"}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid login or password.")
	assert.Nil(t, findCookie(rec, constant.AuthCookie))
}

func TestLogout_ClearsCookie(t *testing.T) {
	site := newTestSite(t)
	user := site.login(t, "regular")

	rec := site.get("/auth/logout", user)
	assert.Equal(t, http.StatusOK, rec.Code)
	cleared := findCookie(rec, constant.AuthCookie)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
}

func TestRecordNotFound_FlashSurvivesRedirect(t *testing.T) {
	site := newTestSite(t)
	admin := site.login(t, "administrator")

	rec := site.get("/portfolio/delete/9999", admin)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/portfolio", rec.Header().Get("Location"))
	flash := findCookie(rec, constant.FlashCookie)
	require.NotNil(t, flash)

	rec = site.get("/portfolio", admin, flash)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Record not found.")
}

func TestUserEdit(t *testing.T) {
	site := newTestSite(t)
	admin := site.login(t, "administrator")
	ctx := context.Background()
	target := site.users.FindByLogin(ctx, "regular")
	require.NotNil(t, target)
	path := "/user/edit/" + itoa(target.ID)

	// 只修改邮箱，登录名保持不变不算冲突
	rec := site.post(path, url.Values{
		"login":   {"regular"},
		"name":    {"Name regular"},
		"mail":    {"changed@example.com"},
		"role_id": {"2"},
	}, admin)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/user/index/1", rec.Header().Get("Location"))
	assert.Equal(t, "changed@example.com", site.users.FindToEdit(ctx, target.ID).Info.Mail)

	// 使用其他用户的登录名
	rec = site.post(path, url.Values{
		"login":   {"another"},
		"name":    {"Name regular"},
		"mail":    {"changed@example.com"},
		"role_id": {"2"},
	}, admin)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "This login is already taken.")

	// 普通用户不能编辑他人
	other := site.users.FindByLogin(ctx, "another")
	user := site.login(t, "regular")
	rec = site.get("/user/edit/"+itoa(other.ID), user)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUserAdd_LoginConflict(t *testing.T) {
	site := newTestSite(t)

	rec := site.post("/user/add", url.Values{
		"login":           {"regular"},
		"password":        {"new-password"},
		"second_password": {"new-password"},
		"name":            {"Someone"},
		"mail":            {"someone@example.com"},
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "This login is already taken.")

	rec = site.post("/user/add", url.Values{
		"login":           {"newcomer"},
		"password":        {"new-password"},
		"second_password": {"new-password"},
		"name":            {"Newcomer"},
		"mail":            {"newcomer@example.com"},
	})
	assert.Equal(t, http.StatusFound, rec.Code)
	cred, err := site.users.LoadUserByLogin(context.Background(), "newcomer")
	require.NoError(t, err)
	assert.Equal(t, []string{constant.RoleUser}, cred.Roles)
}

func TestPhotoUpload(t *testing.T) {
	site := newTestSite(t)
	admin := site.login(t, "administrator")

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	require.NoError(t, w.WriteField("title", "Sunset over the sea"))
	part, err := w.CreateFormFile("photo", "sunset.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/portfolio/add", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := site.do(req, admin)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/portfolio", rec.Header().Get("Location"))

	photos := site.photos.FindAll(context.Background())
	require.Len(t, photos, 1)
	assert.True(t, strings.HasSuffix(photos[0].URL, ".png"))
	_, err = os.Stat(site.media + "/" + photos[0].URL)
	assert.NoError(t, err)

	rec = site.get("/media/"+photos[0].URL, admin)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStaticAssets(t *testing.T) {
	site := newTestSite(t)

	rec := site.get("/static/css/style.css")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Cache-Control"), "max-age")
}

func TestSession_BoundToUserID(t *testing.T) {
	site := newTestSite(t)
	ctx := context.Background()

	old := site.users.FindByLogin(ctx, "another")
	require.NotNil(t, old)
	cookie := site.login(t, "another")

	filler := &models.User{Login: "filler-user", RoleID: constant.RoleUserID, Info: models.UserInfo{Name: "Filler", Mail: "filler@example.com"}}
	require.NoError(t, site.users.Save(ctx, filler, testPassword))
	require.NoError(t, site.users.Delete(ctx, old))

	// 同名账号重新注册
	stranger := &models.User{Login: "another", RoleID: constant.RoleUserID, Info: models.UserInfo{Name: "Stranger", Mail: "stranger@example.com"}}
	require.NoError(t, site.users.Save(ctx, stranger, testPassword))
	require.NotEqual(t, old.ID, stranger.ID)

	rec := site.get("/user/view", cookie)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/auth/login", rec.Header().Get("Location"))
	assert.NotContains(t, rec.Body.String(), "stranger@example.com")
	cleared := findCookie(rec, constant.AuthCookie)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
}

func TestUserEdit_SelfRenameKeepsSession(t *testing.T) {
	site := newTestSite(t)
	ctx := context.Background()
	self := site.users.FindByLogin(ctx, "regular")
	require.NotNil(t, self)
	cookie := site.login(t, "regular")

	// 普通用户的表单不带 role_id，提交的 role_id 也会被忽略
	rec := site.post("/user/edit/"+itoa(self.ID), url.Values{
		"login": {"regular-renamed"},
		"name":  {"Name regular"},
		"mail":  {"regular@example.com"},
	}, cookie)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/portfolio", rec.Header().Get("Location"))

	rec = site.post("/user/edit/"+itoa(self.ID), url.Values{
		"login":   {"regular-renamed"},
		"name":    {"Name regular"},
		"mail":    {"regular@example.com"},
		"role_id": {"1"},
	}, cookie)
	require.Equal(t, http.StatusFound, rec.Code)

	cred, err := site.users.LoadUserByLogin(ctx, "regular-renamed")
	require.NoError(t, err)
	assert.Equal(t, []string{constant.RoleUser}, cred.Roles)

	rec = site.get("/user/view", cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "regular-renamed")
}

func TestPageLifecycle(t *testing.T) {
	site := newTestSite(t)
	admin := site.login(t, "administrator")
	ctx := context.Background()

	page := url.Values{
		"slug":     {"my-page"},
		"title":    {"My page"},
		"content":  {"Some words about me."},
		"in_menu":  {"true"},
		"position": {"1"},
	}
	rec := site.post("/page/add", page, admin)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/pages", rec.Header().Get("Location"))

	rec = site.get("/page/view/my-page")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Some words about me.")

	// 重复 slug
	rec = site.post("/page/add", page, admin)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "A page with this address already exists.")

	// 编辑时不勾选 in_menu 即移出菜单
	rec = site.post("/page/edit/my-page", url.Values{
		"title":    {"Changed title"},
		"content":  {"Other words."},
		"position": {"2"},
	}, admin)
	require.Equal(t, http.StatusFound, rec.Code)
	edited := site.pages.Find(ctx, "my-page")
	require.NotNil(t, edited)
	assert.Equal(t, "Changed title", edited.Title)
	assert.False(t, edited.InMenu)
	assert.Equal(t, 2, edited.Position)

	// 确认字段与路径不一致
	rec = site.post("/page/delete/my-page", url.Values{"slug": {"other-page"}}, admin)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "This value is not valid.")
	assert.NotNil(t, site.pages.Find(ctx, "my-page"))

	rec = site.post("/page/delete/my-page", url.Values{"slug": {"my-page"}}, admin)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Nil(t, site.pages.Find(ctx, "my-page"))

	rec = site.get("/page/view/my-page")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.NotNil(t, findCookie(rec, constant.FlashCookie))
}

func TestCommentLifecycle(t *testing.T) {
	site := newTestSite(t)
	ctx := context.Background()
	author := site.users.FindByLogin(ctx, "regular")
	user := site.login(t, "regular")
	admin := site.login(t, "administrator")

	rec := site.post("/comment/add", url.Values{"content": {"Lovely photos."}}, user)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/portfolio", rec.Header().Get("Location"))

	list, err := site.comments.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, author.ID, list[0].UserID)
	assert.Equal(t, "Name regular", list[0].Name)
	id := itoa(list[0].ID)

	rec = site.get("/comment/index")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Lovely photos.")

	// 编辑和删除只对管理员开放
	rec = site.post("/comment/edit/"+id, url.Values{"content": {"Hijacked."}}, user)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = site.post("/comment/edit/"+id, url.Values{"content": {"Edited by admin."}}, admin)
	require.Equal(t, http.StatusFound, rec.Code)
	edited := site.comments.FindToEdit(ctx, list[0].ID)
	require.NotNil(t, edited)
	assert.Equal(t, "Edited by admin.", edited.Content)
	assert.Equal(t, author.ID, edited.UserID)

	rec = site.post("/comment/delete/"+id, url.Values{"id": {id}}, admin)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Nil(t, site.comments.FindToEdit(ctx, list[0].ID))

	rec = site.get("/comment/edit/"+id, admin)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/portfolio", rec.Header().Get("Location"))
}

func TestUserDelete(t *testing.T) {
	site := newTestSite(t)
	ctx := context.Background()
	target := site.users.FindByLogin(ctx, "another")
	require.NotNil(t, target)
	require.NoError(t, site.comments.Save(ctx, &models.Comment{Content: "Bye.", UserID: target.ID}))
	admin := site.login(t, "administrator")
	path := "/user/delete/" + itoa(target.ID)

	rec := site.get(path, admin)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = site.post(path, url.Values{"id": {"9999"}}, admin)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, site.users.FindByID(ctx, target.ID))

	rec = site.post(path, url.Values{"id": {itoa(target.ID)}}, admin)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/user/index/1", rec.Header().Get("Location"))
	assert.Nil(t, site.users.FindByID(ctx, target.ID))

	comments, err := site.comments.FindAllFromUser(ctx, target.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)

	rec = site.get(path, admin)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/user/index/1", rec.Header().Get("Location"))
}

func TestUserAdd_PersistenceFailure(t *testing.T) {
	site := newTestSite(t)
	require.NoError(t, site.db.Migrator().DropTable(&models.UserInfo{}))

	rec := site.post("/user/add", url.Values{
		"login":           {"unlucky-user"},
		"password":        {"new-password"},
		"second_password": {"new-password"},
		"name":            {"Unlucky"},
		"mail":            {"unlucky@example.com"},
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Something went wrong. Please try again later.")
	assert.True(t, site.users.LoginUnique(context.Background(), "unlucky-user"), "transaction rolled back")
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
