package minio

import (
	"context"
	"errors"
	"testing"

	minioLib "github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMinio implements minioAPI for testing without network.
type fakeMinio struct {
	bucketExists    bool
	bucketExistsErr error

	removed   []string
	removeErr error

	statInfo minioLib.ObjectInfo
	statErr  error
}

func (f *fakeMinio) BucketExists(_ context.Context, _ string) (bool, error) {
	return f.bucketExists, f.bucketExistsErr
}
func (f *fakeMinio) RemoveObject(_ context.Context, _ string, key string, _ minioLib.RemoveObjectOptions) error {
	f.removed = append(f.removed, key)
	return f.removeErr
}
func (f *fakeMinio) StatObject(_ context.Context, _ string, _ string, _ minioLib.StatObjectOptions) (minioLib.ObjectInfo, error) {
	return f.statInfo, f.statErr
}

const baseURL = "http://localhost:9000/avatars"

func TestNewClientWithAPI_BucketExists(t *testing.T) {
	c, err := NewClientWithAPI(context.Background(), &fakeMinio{bucketExists: true}, "avatars", baseURL)
	require.NoError(t, err)
	assert.Equal(t, "avatars", c.bucket)
	assert.Equal(t, baseURL+"/", c.publicBaseURL)
}

func TestNewClientWithAPI_MissingBucket(t *testing.T) {
	c, err := NewClientWithAPI(context.Background(), &fakeMinio{bucketExists: false}, "avatars", baseURL)
	assert.Nil(t, c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestNewClientWithAPI_BucketExistsError(t *testing.T) {
	c, err := NewClientWithAPI(context.Background(), &fakeMinio{bucketExistsErr: errors.New("boom")}, "avatars", baseURL)
	assert.Nil(t, c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to check bucket existence")
}

func TestClient_ObjectKey(t *testing.T) {
	c, err := NewClientWithAPI(context.Background(), &fakeMinio{bucketExists: true}, "avatars", baseURL)
	require.NoError(t, err)

	tests := []struct {
		ref    string
		want   string
		wantOK bool
	}{
		{baseURL + "/u1.png", "u1.png", true},
		{baseURL + "/users/u1/avatar.webp?v=3", "users/u1/avatar.webp", true},
		{baseURL + "/my%20photo.jpg", "my photo.jpg", true},
		{baseURL + "/", "", false},
		{baseURL + "/../secrets", "", false},
		{"https://lh3.googleusercontent.com/a/photo", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			key, ok := c.ObjectKey(tt.ref)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, key)
		})
	}
}

func TestClient_ObjectKey_NoBaseURL(t *testing.T) {
	c, err := NewClientWithAPI(context.Background(), &fakeMinio{bucketExists: true}, "avatars", "")
	require.NoError(t, err)

	_, ok := c.ObjectKey("u1.png")
	assert.False(t, ok)
}

func TestClient_Delete(t *testing.T) {
	api := &fakeMinio{bucketExists: true}
	c, err := NewClientWithAPI(context.Background(), api, "avatars", baseURL)
	require.NoError(t, err)

	require.NoError(t, c.Delete(context.Background(), "u1.png"))
	assert.Equal(t, []string{"u1.png"}, api.removed)

	api.removeErr = errors.New("denied")
	err = c.Delete(context.Background(), "u2.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete object")
}

func TestClient_Exists(t *testing.T) {
	api := &fakeMinio{bucketExists: true}
	c, err := NewClientWithAPI(context.Background(), api, "avatars", baseURL)
	require.NoError(t, err)

	ok, err := c.Exists(context.Background(), "u1.png")
	require.NoError(t, err)
	assert.True(t, ok)

	api.statErr = minioLib.ErrorResponse{Code: "NoSuchKey"}
	ok, err = c.Exists(context.Background(), "u1.png")
	require.NoError(t, err)
	assert.False(t, ok)

	api.statErr = errors.New("network")
	_, err = c.Exists(context.Background(), "u1.png")
	require.Error(t, err)
}
