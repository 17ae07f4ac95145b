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

import "sort"

type int64Slice []int64

func (p int64Slice) Len() int {
	return len(p)
}

func (p int64Slice) Less(i, j int) bool {
	return p[i] < p[j]
}

func (p int64Slice) Swap(i, j int) {
	p[i], p[j] = p[j], p[i]
}

func sortIDs(ids []int64) {
	sort.Sort(int64Slice(ids))
}

// SortedGroups returns the group numbers of a relationship map in ascending
// order.
func SortedGroups(groups map[int][]Relationship) []int {
	res := make([]int, 0, len(groups))
	for group := range groups {
		res = append(res, group)
	}
	sort.Ints(res)
	return res
}
