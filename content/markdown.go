// Copyright (c) 2026, The Galaxy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package content

import (
	"strings"
	"unicode"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	strip "github.com/grokify/html-strip-tags-go"
	"github.com/microcosm-cc/bluemonday"
)

// policy sanitizes rendered catalog markdown. Catalogs are
// hand-edited files, so raw html in them is not trusted.
var policy = bluemonday.UGCPolicy()

// ToHTML renders the given markdown to sanitized html.
func ToHTML(md string) string {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	r := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.HrefTargetBlank})
	out := markdown.ToHTML([]byte(md), p, r)
	return string(policy.SanitizeBytes(out))
}

// PlainText renders the given markdown and returns it as
// plain text on a single line, with all markup removed.
func PlainText(md string) string {
	txt := strip.StripTags(ToHTML(md))
	txt = strings.ReplaceAll(txt, "&amp;", "&")
	return strings.Join(strings.Fields(txt), " ")
}

// HTML returns the body of the item as sanitized html.
func (it *Item) HTML() string {
	return ToHTML(it.Body)
}

// Summary returns the body of the item as plain text elided to
// at most n runes, for use as a teaser in lists.
func (it *Item) Summary(n int) string {
	return Elide(PlainText(it.Body), n)
}

// SummaryN returns the summary of the topic as plain text elided to
// at most n runes.
func (tp *Topic) SummaryN(n int) string {
	return Elide(PlainText(tp.Summary), n)
}

// Elide returns s shortened to at most n runes, ending in an ellipsis
// when it was cut. It returns "" for n <= 0.
func Elide(s string, n int) string {
	if n <= 0 {
		return ""
	}
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return strings.TrimRightFunc(string(rs[:n-1]), unicode.IsSpace) + "…"
}
