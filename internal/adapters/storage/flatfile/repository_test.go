package flatfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/go-fortune/internal/domain"
)

func newTestRepository(t *testing.T, content *string) (*Repository, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fortunes")
	if content != nil {
		require.NoError(t, os.WriteFile(path, []byte(*content), 0o644))
	}

	repo := NewRepository(RepositoryConfig{
		Locator: NewLocator(LocatorConfig{Path: path}),
	})

	return repo, path
}

func ptr(s string) *string { return &s }

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "empty", content: "", want: []string{}},
		{name: "single record", content: "A", want: []string{"A"}},
		{name: "two records", content: "A\n%\nB", want: []string{"A", "B"}},
		{name: "trailing separator", content: "A\n%\nB\n%\n", want: []string{"A", "B"}},
		{name: "unterminated trailing separator", content: "A\n%\nB\n%", want: []string{"A", "B"}},
		{name: "multi-line record", content: "line one\nline two\n%\nB", want: []string{"line one\nline two", "B"}},
		{name: "percent inside text", content: "100% sure\n%\nB", want: []string{"100% sure", "B"}},
		{name: "whitespace kept", content: "  A  \n\n%\n\tB", want: []string{"  A  \n", "\tB"}},
		{name: "empty middle record", content: "A\n%\n\n%\nB", want: []string{"A", "", "B"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Split(tt.content)); diff != "" {
				t.Errorf("Split() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPrefixFor(t *testing.T) {
	assert.Equal(t, "", prefixFor(""))
	assert.Equal(t, "", prefixFor("A\n%\n"))
	assert.Equal(t, "\n", prefixFor("A\n%"))
	assert.Equal(t, domain.Separator, prefixFor("A"))
	assert.Equal(t, domain.Separator, prefixFor("AB\n"))
}

func TestRepository_Load(t *testing.T) {
	repo, _ := newTestRepository(t, ptr("Stay hungry.\n%\nStay foolish."))

	records, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Stay hungry.", "Stay foolish."}, records)
}

func TestRepository_Load_Empty(t *testing.T) {
	repo, _ := newTestRepository(t, ptr(""))

	records, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRepository_Load_Missing(t *testing.T) {
	repo, _ := newTestRepository(t, nil)

	_, err := repo.Load(context.Background())

	require.Error(t, err)
	assert.True(t, domain.IsLocate(err))
}

func TestRepository_Load_InvalidUTF8(t *testing.T) {
	repo, path := newTestRepository(t, ptr("ok\n%\n\xff\xfe"))

	_, err := repo.Load(context.Background())

	require.Error(t, err)
	assert.True(t, domain.IsRead(err))

	var readErr *domain.ReadError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, path, readErr.Path)
}

func TestRepository_Load_Directory(t *testing.T) {
	dir := t.TempDir()
	repo := NewRepository(RepositoryConfig{Locator: NewLocator(LocatorConfig{Path: dir})})

	_, err := repo.Load(context.Background())

	assert.True(t, domain.IsRead(err))
}

func TestRepository_Append(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		text    string
		want    string
	}{
		{name: "empty file", initial: "", text: "Hello", want: "Hello\n%\n"},
		{name: "terminated file", initial: "A\n%\n", text: "B", want: "A\n%\nB\n%\n"},
		{name: "unterminated record", initial: "A", text: "B", want: "A\n%\nB\n%\n"},
		{name: "unterminated separator", initial: "A\n%", text: "B", want: "A\n%\nB\n%\n"},
		{name: "record ending in newline", initial: "A\n", text: "B", want: "A\n\n%\nB\n%\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, path := newTestRepository(t, ptr(tt.initial))

			require.NoError(t, repo.Append(context.Background(), tt.text))

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestRepository_Append_RoundTrip(t *testing.T) {
	initials := []string{"", "A", "A\n%\nB", "A\n%\nB\n%\n", "A\n%\nB\n%", "  spaced  \n"}
	texts := []string{"Hello", "multi\nline", "50% off", "  padded  "}

	for _, initial := range initials {
		for _, text := range texts {
			repo, _ := newTestRepository(t, ptr(initial))
			before := Split(initial)

			require.NoError(t, repo.Append(context.Background(), text))

			after, err := repo.Load(context.Background())
			require.NoError(t, err)

			want := append(append([]string{}, before...), text)
			if diff := cmp.Diff(want, after); diff != "" {
				t.Errorf("initial %q, text %q (-want +got):\n%s", initial, text, diff)
			}
		}
	}
}

func TestRepository_Append_Missing(t *testing.T) {
	repo, path := newTestRepository(t, nil)

	err := repo.Append(context.Background(), "Hello")

	require.Error(t, err)
	assert.True(t, domain.IsLocate(err))

	_, statErr := os.Stat(path)
	assert.ErrorIs(t, statErr, os.ErrNotExist, "append must not create the database")
}

func TestRepository_Append_Directory(t *testing.T) {
	dir := t.TempDir()
	repo := NewRepository(RepositoryConfig{Locator: NewLocator(LocatorConfig{Path: dir})})

	err := repo.Append(context.Background(), "Hello")

	assert.True(t, domain.IsWrite(err))
}
