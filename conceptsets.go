// The MIT License (MIT)

// Copyright (c) 2016, 2017 Fabian Wenzelmann

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package elaxioms

// IDSet is a set of SNOMED CT identifiers.
type IDSet map[int64]struct{}

// NewIDSet returns a set containing the given identifiers.
func NewIDSet(ids ...int64) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Contains checks if id ∈ s.
func (s IDSet) Contains(id int64) bool {
	_, has := s[id]
	return has
}

// Add adds id to the set and returns true if it was not contained before.
func (s IDSet) Add(id int64) bool {
	oldLen := len(s)
	s[id] = struct{}{}
	return oldLen != len(s)
}

// Union adds all elements from other and returns true if s changed.
func (s IDSet) Union(other IDSet) bool {
	oldLen := len(s)
	for v := range other {
		s[v] = struct{}{}
	}
	return oldLen != len(s)
}

// IsSubset tests if s ⊆ other.
func (s IDSet) IsSubset(other IDSet) bool {
	if len(s) > len(other) {
		return false
	}
	for v := range s {
		if _, hasD := other[v]; !hasD {
			return false
		}
	}
	return true
}

// Equals checks if s = other.
func (s IDSet) Equals(other IDSet) bool {
	return len(s) == len(other) && s.IsSubset(other)
}

// Copy returns a new set with the same elements.
func (s IDSet) Copy() IDSet {
	res := make(IDSet, len(s))
	for v := range s {
		res[v] = struct{}{}
	}
	return res
}

// Sorted returns the elements of s in ascending order.
func (s IDSet) Sorted() []int64 {
	res := make([]int64, 0, len(s))
	for v := range s {
		res = append(res, v)
	}
	sortIDs(res)
	return res
}
