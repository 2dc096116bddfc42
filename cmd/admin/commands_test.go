package main

import (
	"bytes"
	"context"
	"testing"

	"tastebuds/internal/admin"
	"tastebuds/internal/models"
	"tastebuds/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func runAdmin(t *testing.T, db *gorm.DB, args ...string) (string, error) {
	t.Helper()
	open := func(context.Context) (*admin.Registry, func(), error) {
		return admin.NewRegistry(db, nil), func() {}, nil
	}
	cmd := newRootCmd(open)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestTablesCommand(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.CreateUser(t, db, "root")

	out, err := runAdmin(t, db, "tables")
	require.NoError(t, err)
	assert.Contains(t, out, "TABLE")
	assert.Regexp(t, `users\s+1`, out)
	assert.Contains(t, out, "chat_participants")
}

func TestListAndGetCommands(t *testing.T) {
	db := testutil.NewTestDB(t)
	u := testutil.CreateUser(t, db, "lister")

	out, err := runAdmin(t, db, "list", "users")
	require.NoError(t, err)
	assert.Contains(t, out, `"username": "lister"`)
	assert.NotContains(t, out, "password")

	out, err = runAdmin(t, db, "get", "users", "1")
	require.NoError(t, err)
	assert.Contains(t, out, u.Email)

	_, err = runAdmin(t, db, "get", "users", "99")
	assert.Error(t, err)
}

func TestDeleteCommand(t *testing.T) {
	db := testutil.NewTestDB(t)
	a := testutil.CreateUser(t, db, "a")
	b := testutil.CreateUser(t, db, "b")
	require.NoError(t, db.Create(&models.Follow{FollowerID: a.ID, FollowedID: b.ID}).Error)

	out, err := runAdmin(t, db, "delete", "follows", "1,2")
	require.NoError(t, err)
	assert.Contains(t, out, "deleted follows 1,2")

	var n int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestCommandArgsValidated(t *testing.T) {
	db := testutil.NewTestDB(t)
	_, err := runAdmin(t, db, "get", "users")
	assert.Error(t, err)
}
