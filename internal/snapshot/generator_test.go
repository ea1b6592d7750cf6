package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fame_list/internal/db/models"
	mock_repositories "fame_list/internal/db/repositories/mocks"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var today = time.Date(2024, time.May, 20, 15, 4, 5, 0, time.Local)

func fixedClock() time.Time {
	return today
}

func strPtr(s string) *string {
	return &s
}

func roster() []*models.Member {
	return []*models.Member{
		{
			ID:          1,
			Nickname:    "Алиса",
			Username:    "@alice_tg",
			Category:    "Artist",
			Role:        "Artist",
			Description: "Рисует <комиксы> & стикеры",
			Avatar:      strPtr("img/avatar1.png"),
			Verified:    true,
			Project:     "https://t.me/alice_tg",
			Telegram:    "alice_tg",
			JoinDate:    time.Date(2023, time.January, 2, 0, 0, 0, 0, time.UTC),
			Activity:    models.DefaultMemberActivity,
			Details:     "Рисует <комиксы> & стикеры",
			Skills:      []string{"drawing", "stickers"},
		},
		{
			ID:       2,
			Nickname: "Bob",
			Username: "@bob",
			Category: "Dev",
			Role:     "Dev",
			Scam:     true,
			Telegram: "bob",
		},
	}
}

func TestNewEntry_Normalizes(t *testing.T) {
	entry := NewEntry(roster()[1], today)

	assert.Equal(t, "2024-05-20", entry.JoinDate)
	assert.NotNil(t, entry.Skills)
	assert.Empty(t, entry.Skills)
	assert.Nil(t, entry.Avatar)
	assert.True(t, entry.Scam)
	assert.False(t, entry.Verified)
	assert.False(t, entry.Pinned)
}

func TestNewEntry_KeepsJoinDate(t *testing.T) {
	entry := NewEntry(roster()[0], today)

	assert.Equal(t, "2023-01-02", entry.JoinDate)
	assert.Equal(t, []string{"drawing", "stickers"}, entry.Skills)
	assert.Equal(t, "img/avatar1.png", *entry.Avatar)
}

func TestEncode_EmptyRoster(t *testing.T) {
	data, err := Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestEncode_PreservesNonASCIIAndHTML(t *testing.T) {
	data, err := Encode(NewEntries(roster(), today))
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, `"nickname": "Алиса"`)
	assert.Contains(t, text, `"description": "Рисует <комиксы> & стикеры"`)
	assert.Contains(t, text, "\n  {\n    \"id\": 1,")
	assert.Contains(t, text, `"joinDate": "2023-01-02"`)
	assert.Contains(t, text, `"skills": []`)
	assert.Contains(t, text, `"avatar": null`)
	assert.True(t, strings.HasSuffix(text, "\n]"))
}

func TestGenerate_WritesFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	memberRepo := mock_repositories.NewMockMemberRepository(ctrl)
	memberRepo.EXPECT().GetMany(gomock.Any()).Return(roster(), nil)

	path := filepath.Join(t.TempDir(), "frontend", "members_data.json")
	g := NewGenerator(memberRepo, path, zap.NewNop().Sugar(), WithClock(fixedClock))

	entries, err := g.Generate(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, path, g.Path())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, float64(1), decoded[0]["id"])
	assert.Equal(t, true, decoded[0]["verified"])
	assert.Equal(t, []any{"drawing", "stickers"}, decoded[0]["skills"])
	assert.Equal(t, "2024-05-20", decoded[1]["joinDate"])
	assert.Equal(t, []any{}, decoded[1]["skills"])

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(path), "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestGenerate_IsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	memberRepo := mock_repositories.NewMockMemberRepository(ctrl)
	memberRepo.EXPECT().GetMany(gomock.Any()).Return(roster(), nil).Times(2)

	path := filepath.Join(t.TempDir(), "members_data.json")
	g := NewGenerator(memberRepo, path, zap.NewNop().Sugar(), WithClock(fixedClock))

	_, err := g.Generate(context.Background())
	require.NoError(t, err)
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = g.Generate(context.Background())
	require.NoError(t, err)
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerate_ReplacesPreviousContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	path := filepath.Join(t.TempDir(), "members_data.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id": 99}]`), 0o644))

	memberRepo := mock_repositories.NewMockMemberRepository(ctrl)
	memberRepo.EXPECT().GetMany(gomock.Any()).Return([]*models.Member{}, nil)

	g := NewGenerator(memberRepo, path, zap.NewNop().Sugar(), WithClock(fixedClock))
	_, err := g.Generate(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestGenerate_RepositoryErrorKeepsFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	path := filepath.Join(t.TempDir(), "members_data.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o644))

	memberRepo := mock_repositories.NewMockMemberRepository(ctrl)
	memberRepo.EXPECT().GetMany(gomock.Any()).Return(nil, errors.New("database error"))

	g := NewGenerator(memberRepo, path, zap.NewNop().Sugar())
	_, err := g.Generate(context.Background())
	assert.Error(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestGenerate_Metrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	memberRepo := mock_repositories.NewMockMemberRepository(ctrl)
	gomock.InOrder(
		memberRepo.EXPECT().GetMany(gomock.Any()).Return(roster(), nil),
		memberRepo.EXPECT().GetMany(gomock.Any()).Return(nil, errors.New("database error")),
	)

	registry := prometheus.NewRegistry()
	metrics := &Metrics{}
	metrics.Register(registry)
	metrics.Register(registry)

	path := filepath.Join(t.TempDir(), "members_data.json")
	g := NewGenerator(memberRepo, path, zap.NewNop().Sugar(), WithClock(fixedClock), WithMetrics(metrics))

	_, err := g.Generate(context.Background())
	require.NoError(t, err)
	_, err = g.Generate(context.Background())
	require.Error(t, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.generations))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.failures))
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.members))
	assert.Equal(t, float64(today.Unix()), testutil.ToFloat64(metrics.lastSuccess))
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var metrics *Metrics
	metrics.observeSuccess(1, 0)
	metrics.observeFailure()

	unregistered := &Metrics{}
	unregistered.Register(nil)
	unregistered.observeSuccess(1, 0)
	unregistered.observeFailure()
}
