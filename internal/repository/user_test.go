package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/kdam/portfolio/internal/constant"
	"github.com/kdam/portfolio/internal/models"
	"github.com/kdam/portfolio/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_LoginUnique(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewUserRepository(db, plainHasher{})
	ctx := context.Background()

	assert.True(t, repo.LoginUnique(ctx, "katarzyna"))
	createUser(t, repo, "katarzyna")
	assert.False(t, repo.LoginUnique(ctx, "katarzyna"))
	assert.True(t, repo.LoginUnique(ctx, "someone-else"))
}

func TestUserRepository_LoginUniqueInEdit(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewUserRepository(db, plainHasher{})
	ctx := context.Background()

	first := createUser(t, repo, "first-user")
	second := createUser(t, repo, "second-user")

	assert.True(t, repo.LoginUniqueInEdit(ctx, first.ID, "first-user"), "own login is not a conflict")
	assert.False(t, repo.LoginUniqueInEdit(ctx, first.ID, "second-user"))
	assert.True(t, repo.LoginUniqueInEdit(ctx, second.ID, "brand-new-login"))
}

func TestUserRepository_SaveCreatesInfoRow(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewUserRepository(db, plainHasher{})
	ctx := context.Background()

	user := createUser(t, repo, "with-info")

	loaded := repo.FindToEdit(ctx, user.ID)
	require.NotNil(t, loaded)
	assert.Equal(t, "Name with-info", loaded.Info.Name)
	assert.Equal(t, "with-info@example.com", loaded.Info.Mail)
	assert.Equal(t, constant.RoleUser, loaded.Role.Name)
	assert.Equal(t, "hashed:password123", loaded.Password)
}

func TestUserRepository_SaveUpdateKeepsPasswordWhenEmpty(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewUserRepository(db, plainHasher{})
	ctx := context.Background()

	user := createUser(t, repo, "keeps-hash")
	edit := repo.FindToEdit(ctx, user.ID)
	require.NotNil(t, edit)

	edit.Info.Mail = "changed@example.com"
	require.NoError(t, repo.Save(ctx, edit, ""))

	reloaded := repo.FindToEdit(ctx, user.ID)
	require.NotNil(t, reloaded)
	assert.Equal(t, "keeps-hash", reloaded.Login)
	assert.Equal(t, "changed@example.com", reloaded.Info.Mail)
	assert.Equal(t, "hashed:password123", reloaded.Password)

	require.NoError(t, repo.Save(ctx, reloaded, "new-password"))
	assert.Equal(t, "hashed:new-password", repo.FindByID(ctx, user.ID).Password)

	var infos int64
	require.NoError(t, db.Model(&models.UserInfo{}).Where("user_id = ?", user.ID).Count(&infos).Error)
	assert.Equal(t, int64(1), infos, "update must not duplicate the info row")
}

func TestUserRepository_SaveNewUserRequiresPassword(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewUserRepository(db, plainHasher{})

	err := repo.Save(context.Background(), &models.User{Login: "no-password"}, "")
	assert.Error(t, err)
	assert.True(t, repo.LoginUnique(context.Background(), "no-password"))
}

func TestUserRepository_LoadUserByLogin(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewUserRepository(db, plainHasher{})
	ctx := context.Background()

	user := createUser(t, repo, "credentials")

	cred, err := repo.LoadUserByLogin(ctx, "credentials")
	require.NoError(t, err)
	assert.Equal(t, user.ID, cred.ID)
	assert.Equal(t, []string{constant.RoleUser}, cred.Roles)
	assert.Equal(t, "hashed:password123", cred.Password)

	_, err = repo.LoadUserByLogin(ctx, "missing-user")
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}

func TestUserRepository_LoadUserByID(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewUserRepository(db, plainHasher{})
	ctx := context.Background()

	user := createUser(t, repo, "by-identifier")

	cred, err := repo.LoadUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "by-identifier", cred.Login)
	assert.Equal(t, []string{constant.RoleUser}, cred.Roles)

	require.NoError(t, repo.Delete(ctx, user))
	_, err = repo.LoadUserByID(ctx, user.ID)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_LoadUserByLoginWithoutRole(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewUserRepository(db, plainHasher{})
	ctx := context.Background()

	user := createUser(t, repo, "orphan-role")
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).Update("role_id", 99).Error)

	_, err := repo.LoadUserByLogin(ctx, "orphan-role")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_DeleteCascadesComments(t *testing.T) {
	db := newTestDB(t)
	users := repository.NewUserRepository(db, plainHasher{})
	comments := repository.NewCommentRepository(db)
	ctx := context.Background()

	victim := createUser(t, users, "victim-user")
	other := createUser(t, users, "other-user")

	for i := 0; i < 3; i++ {
		require.NoError(t, comments.Save(ctx, &models.Comment{Content: fmt.Sprintf("victim %d", i), UserID: victim.ID}))
	}
	for i := 0; i < 2; i++ {
		require.NoError(t, comments.Save(ctx, &models.Comment{Content: fmt.Sprintf("other %d", i), UserID: other.ID}))
	}

	require.NoError(t, users.Delete(ctx, victim))

	assert.Nil(t, users.FindByID(ctx, victim.ID))
	left, err := comments.FindAllFromUser(ctx, victim.ID)
	require.NoError(t, err)
	assert.Empty(t, left)

	remaining, err := comments.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), remaining)

	var infos int64
	require.NoError(t, db.Model(&models.UserInfo{}).Where("user_id = ?", victim.ID).Count(&infos).Error)
	assert.Zero(t, infos)
	assert.NotNil(t, users.FindToEdit(ctx, other.ID))
}

func TestUserRepository_FindAllPagination(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewUserRepository(db, plainHasher{})
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		createUser(t, repo, fmt.Sprintf("paged-user-%02d", i))
	}

	first, err := repo.FindAll(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, first.Pages)
	assert.Equal(t, int64(25), first.Total)
	require.Len(t, first.Items, 10)
	for i, u := range first.Items {
		assert.Equal(t, fmt.Sprintf("paged-user-%02d", i), u.Login)
	}

	last, err := repo.FindAll(ctx, 3, 10)
	require.NoError(t, err)
	assert.Len(t, last.Items, 5)

	fallback, err := repo.FindAll(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, fallback.Page)

	exact, err := repo.FindAll(ctx, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, exact.Pages)
}
