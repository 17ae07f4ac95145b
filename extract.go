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

// NamedEntities returns the identifiers of all named classes and properties
// that occur in e, including the properties of restrictions and property
// chains.
func NamedEntities(e Expression) IDSet {
	res := make(IDSet)
	CollectNamedEntities(e, res)
	return res
}

// CollectNamedEntities adds all identifiers that occur in e to s.
func CollectNamedEntities(e Expression, s IDSet) {
	switch t := e.(type) {
	case NamedEntity:
		s.Add(t.ID())
	case *ObjectIntersection:
		for _, op := range t.Operands {
			CollectNamedEntities(op, s)
		}
	case *ObjectSomeValuesFrom:
		s.Add(t.Property.ID())
		CollectNamedEntities(t.Filler, s)
	case *ObjectPropertyChain:
		for _, r := range t.Properties {
			s.Add(r.ID())
		}
	case *SubClassOf:
		CollectNamedEntities(t.Sub, s)
		CollectNamedEntities(t.Super, s)
	case *EquivalentClasses:
		CollectNamedEntities(t.Left, s)
		CollectNamedEntities(t.Right, s)
	case *SubObjectPropertyOf:
		CollectNamedEntities(t.Sub, s)
		s.Add(t.Super.ID())
	case *TransitiveObjectProperty:
		s.Add(t.Property.ID())
	case *ReflexiveObjectProperty:
		s.Add(t.Property.ID())
	}
}
