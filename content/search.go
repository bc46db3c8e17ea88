// Copyright (c) 2026, The Galaxy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package content

import (
	"cmp"
	"slices"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// MinScore is the minimum fuzzy similarity for a [Match] to be returned.
var MinScore = 0.75

// Match is one result of [Search].
type Match struct {

	// Topic is the id of the matching topic, or of the topic owning the item.
	Topic string

	// Item is the id of the matching item, or "" for a topic match.
	Item string

	// Title is the title of the match.
	Title string

	// Score is the relevance in [0, 2]: substring matches score
	// above 1, fuzzy matches score their similarity.
	Score float64
}

// Search returns the topics and items whose titles or tags match the
// given query, best first. Substring matches rank above fuzzy matches;
// ties keep catalog order. An empty query matches every topic.
func Search(cat *Catalog, query string) []Match {
	q := strings.ToLower(strings.TrimSpace(query))
	var res []Match
	if q == "" {
		for i := range cat.topics {
			tp := &cat.topics[i]
			res = append(res, Match{Topic: tp.ID, Title: tp.Title, Score: 1})
		}
		return res
	}
	jw := metrics.NewJaroWinkler()
	jw.CaseSensitive = false
	score := func(words ...string) float64 {
		best := 0.0
		for _, w := range words {
			lw := strings.ToLower(w)
			if strings.Contains(lw, q) {
				best = max(best, 2-float64(len(lw)-len(q))/float64(len(lw)+1))
				continue
			}
			best = max(best, strutil.Similarity(q, lw, jw))
		}
		return best
	}
	for i := range cat.topics {
		tp := &cat.topics[i]
		if s := score(append([]string{tp.Title}, tp.Highlights...)...); s >= MinScore {
			res = append(res, Match{Topic: tp.ID, Title: tp.Title, Score: s})
		}
		for j := range tp.Items {
			it := &tp.Items[j]
			if s := score(append([]string{it.Title}, it.Tags...)...); s >= MinScore {
				res = append(res, Match{Topic: tp.ID, Item: it.ID, Title: it.Title, Score: s})
			}
		}
	}
	slices.SortStableFunc(res, func(a, b Match) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return res
}
