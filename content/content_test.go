// Copyright (c) 2026, The Galaxy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package content

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTopics() []Topic {
	return []Topic{
		{ID: "eng", Title: "Eng", Color: "#06b6d4", Items: []Item{
			{ID: "rail", Title: "Rail", Body: "Track design"},
			{ID: "power", Title: "Power", Color: "#ff0000", Weight: 2},
		}},
		{ID: "music", Title: "Music", Color: "#ec4899", Kind: Performance, Items: []Item{
			{ID: "violin", Title: "Violin", Tags: []string{"Classical"}},
			{ID: "vocals", Title: "Vocals"},
		}},
	}
}

func TestNewCatalog(t *testing.T) {
	cat, err := NewCatalog("Tester", testTopics())
	require.NoError(t, err)
	assert.Equal(t, 2, cat.Len())
	assert.Equal(t, "Tester", cat.Name)
	assert.Equal(t, "eng", cat.TopicAt(0).ID)
	assert.Equal(t, 1, cat.TopicIndex("music"))
	assert.Equal(t, -1, cat.TopicIndex("nope"))
	assert.Nil(t, cat.Topic("nope"))
	assert.Nil(t, cat.Item("nope"))

	eng := cat.Topic("eng")
	require.NotNil(t, eng)
	assert.Equal(t, 1, eng.ItemIndex("power"))
	assert.True(t, eng.HasItem("power"))
	assert.False(t, eng.HasItem("violin"))
	assert.False(t, eng.Orbit.IsZero())

	assert.Equal(t, "music", cat.TopicOf("violin").ID)
	assert.Equal(t, "Violin", cat.Item("violin").Title)
}

func TestCatalogAccents(t *testing.T) {
	cat, err := NewCatalog("", testTopics())
	require.NoError(t, err)
	eng := cat.Topic("eng")
	assert.Equal(t, uint8(0x06), eng.Accent().R)
	assert.Equal(t, eng.Accent(), cat.Item("rail").Accent())
	assert.Equal(t, uint8(0xff), cat.Item("power").Accent().R)
}

func TestCatalogWeights(t *testing.T) {
	cat, err := NewCatalog("", testTopics())
	require.NoError(t, err)
	assert.Equal(t, float32(1), cat.Item("rail").Weight)
	assert.Equal(t, float32(2), cat.Item("power").Weight)
}

func TestCatalogIsolated(t *testing.T) {
	tps := testTopics()
	cat, err := NewCatalog("", tps)
	require.NoError(t, err)
	tps[0].Items[0].Title = "changed"
	tps[1].Items[0].Tags[0] = "changed"
	assert.Equal(t, "Rail", cat.Item("rail").Title)
	assert.Equal(t, "Classical", cat.Item("violin").Tags[0])

	cp := cat.Topics()
	cp[0].Title = "changed"
	assert.Equal(t, "Eng", cat.Topic("eng").Title)
}

func TestCatalogErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(tps []Topic) []Topic
		msg    string
	}{
		{"empty", func(tps []Topic) []Topic { return nil }, "no topics"},
		{"empty topic id", func(tps []Topic) []Topic { tps[0].ID = " "; return tps }, "empty id"},
		{"duplicate topic", func(tps []Topic) []Topic { tps[1].ID = "eng"; return tps }, `"eng": duplicate id`},
		{"duplicate item", func(tps []Topic) []Topic { tps[1].Items[0].ID = "rail"; return tps }, `"rail": duplicate id`},
		{"empty item id", func(tps []Topic) []Topic { tps[1].Items[1].ID = ""; return tps }, "item 1: empty id"},
		{"bad color", func(tps []Topic) []Topic { tps[0].Color = "#12"; return tps }, "color"},
		{"bad item color", func(tps []Topic) []Topic { tps[0].Items[0].Color = "blue"; return tps }, "color"},
		{"bad kind", func(tps []Topic) []Topic { tps[0].Kind = KindsN; return tps }, "invalid kind"},
		{"negative weight", func(tps []Topic) []Topic { tps[0].Items[0].Weight = -1; return tps }, "negative weight"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog("", tt.modify(testTopics()))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestDefault(t *testing.T) {
	cat := Default()
	assert.Equal(t, "Sean Ogta Goh", cat.Name)
	require.Equal(t, 6, cat.Len())
	ids := make([]string, cat.Len())
	for i, tp := range cat.Topics() {
		ids[i] = tp.ID
		assert.NotEmpty(t, tp.Items, tp.ID)
	}
	assert.Equal(t, []string{"engineering", "music", "psychology", "motorsports", "archery", "achievements"}, ids)
	eng := cat.Topic("engineering")
	assert.Equal(t, math32.Vec3(0, 2, 0), eng.Home)
	assert.Equal(t, Skill, eng.Kind)
	assert.Equal(t, Award, cat.Topic("achievements").Kind)
	assert.Equal(t, Performance, cat.Item("violin").Kind)
	links := cat.Links()
	require.Len(t, links, 3)
	assert.Equal(t, "LinkedIn", links[0].Title)
	assert.True(t, links[2].IsMail())
}

func TestFormatOf(t *testing.T) {
	ft, err := FormatOf("a/b/catalog.TOML")
	assert.NoError(t, err)
	assert.Equal(t, TOML, ft)
	ft, err = FormatOf("catalog.yml")
	assert.NoError(t, err)
	assert.Equal(t, YAML, ft)
	_, err = FormatOf("catalog.json")
	assert.Error(t, err)
}

func TestYAMLMatchesTOML(t *testing.T) {
	cat := Default()
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, cat, YAML))
	ycat, err := Read(&buf, YAML)
	require.NoError(t, err)
	assert.Equal(t, cat.Topics(), ycat.Topics())
	assert.Equal(t, cat.Links(), ycat.Links())
	assert.Equal(t, cat.Name, ycat.Name)
}

func TestReadUnknownField(t *testing.T) {
	src := `
name = "x"
[[topics]]
id = "a"
color = "#fff"
colour = "#000"
`
	_, err := Read(strings.NewReader(src), TOML)
	assert.Error(t, err)

	ysrc := "topics:\n  - id: a\n    color: '#fff'\n    size: 3\n"
	_, err = Read(strings.NewReader(ysrc), YAML)
	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "catalog.yaml")
	src := `
name: Y
topics:
  - id: a
    title: A
    color: '#00ff00'
    kind: Practice
    items:
      - id: a1
        title: A one
        body: "Hello *world*"
`
	require.NoError(t, os.WriteFile(fn, []byte(src), 0666))
	cat, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, Practice, cat.Topic("a").Kind)
	assert.Equal(t, "A one", cat.Item("a1").Title)

	_, err = Open(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func TestMarkdown(t *testing.T) {
	it := &Item{Body: "Hello **bold** <script>alert(1)</script> & [link](https://example.com)"}
	html := it.HTML()
	assert.Contains(t, html, "<strong>bold</strong>")
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, `href="https://example.com"`)

	assert.Equal(t, "Hello bold & link", it.Summary(100))
	s := it.Summary(8)
	assert.LessOrEqual(t, utf8.RuneCountInString(s), 8)
	assert.True(t, strings.HasSuffix(s, "…"))
	assert.NotContains(t, s, "<")
}

func TestSummaryRunes(t *testing.T) {
	it := &Item{Body: "Добро пожаловать в галактику"}
	s := it.Summary(8)
	assert.True(t, utf8.ValidString(s))
	assert.Equal(t, "Добро п…", s)
	assert.Equal(t, 8, utf8.RuneCountInString(s))

	cjk := &Item{Body: "银河系中的作品集"}
	assert.Equal(t, "银河…", cjk.Summary(3))
	assert.Equal(t, "银河系中的作品集", cjk.Summary(8))

	assert.Empty(t, it.Summary(0))
	assert.Empty(t, it.Summary(-1))
	assert.Equal(t, "…", it.Summary(1))

	tp := &Topic{Summary: "Ünïcödé **topic** summary"}
	assert.Equal(t, "Ünïcödé…", tp.SummaryN(8))
}

func TestLinks(t *testing.T) {
	links := []Link{
		{Title: "GitHub", URL: "https://github.com/example"},
		{URL: "mailto:someone@example.com"},
	}
	cat, err := NewCatalog("", testTopics(), links...)
	require.NoError(t, err)
	got := cat.Links()
	require.Len(t, got, 2)
	assert.Equal(t, "GitHub", got[0].Title)
	assert.False(t, got[0].IsMail())
	assert.Equal(t, "someone@example.com", got[1].Title)
	assert.True(t, got[1].IsMail())

	got[0].Title = "changed"
	assert.Equal(t, "GitHub", cat.Links()[0].Title)
	links[0].Title = "changed"
	assert.Equal(t, "GitHub", cat.Links()[0].Title)

	for _, bad := range []string{"", "github.com", "ftp://example.com", "https://", "mailto:"} {
		_, err := NewCatalog("", testTopics(), Link{Title: "x", URL: bad})
		assert.Error(t, err, bad)
	}
}

func TestSave(t *testing.T) {
	cat, err := NewCatalog("Saved", testTopics(), Link{Title: "Site", URL: "https://example.com"})
	require.NoError(t, err)
	dir := t.TempDir()
	for _, name := range []string{"out.toml", "out.yaml"} {
		fn := filepath.Join(dir, name)
		require.NoError(t, Save(cat, fn))
		got, err := Open(fn)
		require.NoError(t, err)
		assert.Equal(t, cat.Name, got.Name)
		assert.Equal(t, cat.Topics(), got.Topics())
		assert.Equal(t, cat.Links(), got.Links())
	}
	assert.Error(t, Save(cat, filepath.Join(dir, "out.json")))
}

func TestSearch(t *testing.T) {
	cat, err := NewCatalog("", testTopics())
	require.NoError(t, err)

	all := Search(cat, "  ")
	require.Len(t, all, 2)
	assert.Equal(t, "eng", all[0].Topic)

	res := Search(cat, "vio")
	require.NotEmpty(t, res)
	assert.Equal(t, "violin", res[0].Item)
	assert.Equal(t, "music", res[0].Topic)
	assert.Greater(t, res[0].Score, 1.0)

	res = Search(cat, "classical")
	require.NotEmpty(t, res)
	assert.Equal(t, "violin", res[0].Item)

	res = Search(cat, "Musik")
	require.NotEmpty(t, res)
	assert.Equal(t, "music", res[0].Topic)
	assert.Empty(t, res[0].Item)

	assert.Empty(t, Search(cat, "zzzzqqq"))
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "catalog.toml")
	write := func(title string) {
		src := "[[topics]]\nid = \"a\"\ntitle = \"" + title + "\"\ncolor = \"#123456\"\n"
		require.NoError(t, os.WriteFile(fn, []byte(src), 0666))
	}
	write("first")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	got := make(chan *Catalog, 16)
	require.NoError(t, Watch(ctx, fn, func(cat *Catalog) { got <- cat }))

	write("second")
	select {
	case cat := <-got:
		assert.Equal(t, "second", cat.Topic("a").Title)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}
}
