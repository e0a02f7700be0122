// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package harness

import (
	"slices"
)

// TagSet records the tags a collaborator succeeded on. The zero value is
// ready to use. A TagSet is owned by one goroutine.
type TagSet struct {
	data map[int]struct{}
}

func (s *TagSet) m() map[int]struct{} {
	if s.data == nil {
		s.data = make(map[int]struct{})
	}
	return s.data
}

// Add records tag.
func (s *TagSet) Add(tag int) {
	s.m()[tag] = struct{}{}
}

// Has reports whether tag was recorded.
func (s *TagSet) Has(tag int) bool {
	_, ok := s.data[tag]
	return ok
}

// Len returns the number of distinct tags recorded.
func (s *TagSet) Len() int {
	return len(s.data)
}

// Sorted returns the tags in ascending order.
func (s *TagSet) Sorted() []int {
	tags := make([]int, 0, len(s.data))
	for tag := range s.data {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}
