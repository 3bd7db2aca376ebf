package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/recap/internal/document"
	"github.com/nguyentantai21042004/recap/internal/transcript"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "recap.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func buildDoc(t *testing.T) (*document.Session, *document.Document) {
	t.Helper()
	sess := document.NewSession()
	doc := sess.Rebuild("https://youtu.be/x?t=", []document.Section{
		{Title: "Section 1: Intro", Start: 0, End: 20, Summary: "intro"},
		{Title: "Section 2: Body", Start: 20, End: 40, Summary: "body"},
	}, []transcript.Fragment{{Start: 1, Text: "hi"}, {Start: 21, Text: "there"}})
	return sess, doc
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	sess, doc := buildDoc(t)
	require.NoError(t, sess.Commit(doc.Generation, "section_1", document.StyleFun, "wheee"))

	require.NoError(t, s.Save(ctx, "My talk", doc.Snapshot()))

	rec, err := s.Load(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "My talk", rec.Title)

	restored, err := document.Restore(rec.Snapshot)
	require.NoError(t, err)
	assert.Equal(t, doc.Render(), restored.Render())
	assert.Equal(t, doc.CreatedAt.Unix(), rec.Snapshot.CreatedAt.Unix())
}

func TestSaveReplacesSections(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	_, doc := buildDoc(t)
	require.NoError(t, s.Save(ctx, "t", doc.Snapshot()))

	snap := doc.Snapshot()
	snap.Sections = snap.Sections[:1]
	snap.Sections[0].Summary = "edited"
	require.NoError(t, s.Save(ctx, "t2", snap))

	rec, err := s.Load(ctx, doc.ID)
	require.NoError(t, err)
	require.Len(t, rec.Snapshot.Sections, 1)
	assert.Equal(t, "edited", rec.Snapshot.Sections[0].Summary)
	assert.Equal(t, "t2", rec.Title)
}

func TestLatestAndList(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	_, err := s.Latest(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	_, first := buildDoc(t)
	_, second := buildDoc(t)
	require.NoError(t, s.Save(ctx, "first", first.Snapshot()))
	require.NoError(t, s.Save(ctx, "second", second.Snapshot()))

	latest, err := s.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.Snapshot.ID)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "second", list[0].Title)
	assert.Equal(t, 2, list[0].Sections)

	_, err = s.Load(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
