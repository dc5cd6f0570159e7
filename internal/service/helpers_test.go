package service

import (
	"bytes"
	"career_compass_backend/internal/model"
	"career_compass_backend/internal/repository"
	"career_compass_backend/pkg/database"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "service.db"))
	require.NoError(t, err)
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, password string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := &model.User{
		FullName:     "Asha Rao",
		Email:        email,
		Birthday:     time.Date(2008, 5, 14, 0, 0, 0, 0, time.UTC),
		Standard:     "12",
		PasswordHash: string(hash),
	}
	require.NoError(t, repository.NewUserRepository(db).Create(context.Background(), user))
	return user
}

// newFileHeader 构造一个 multipart 上传文件
func newFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("photo", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload-photo", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["photo"][0]
}

// fakeGenerator 记录调用次数并返回预设输出
type fakeGenerator struct {
	reply   string
	err     error
	calls   int
	prompts []string
}

func (f *fakeGenerator) Complete(ctx context.Context, operation, system, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

type memoryQuestionCache struct {
	items map[model.QuizType][]Question
}

func (c *memoryQuestionCache) Get(ctx context.Context, quizType model.QuizType) ([]Question, bool, error) {
	q, ok := c.items[quizType]
	return q, ok, nil
}

func (c *memoryQuestionCache) Set(ctx context.Context, quizType model.QuizType, questions []Question) error {
	if c.items == nil {
		c.items = map[model.QuizType][]Question{}
	}
	c.items[quizType] = questions
	return nil
}
