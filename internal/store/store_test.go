package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type entry struct {
	label string
	tag   uint8
}

func Test_Table_InsertAndLookup(t *testing.T) {
	assert := assert.New(t)

	tab := New[*entry]()

	e1 := &entry{label: "{q0}"}
	assert.NoError(tab.Insert(e1.label, e1.tag, e1))
	assert.Equal(1, tab.Len())

	got, ok := tab.Lookup("{q0}")
	assert.True(ok)
	assert.Same(e1, got)

	_, ok = tab.Lookup("{q1}")
	assert.False(ok)

	// a second entry under the same compound key is refused
	err := tab.Insert("{q0}", 0, &entry{label: "{q0}"})
	assert.ErrorIs(err, ErrDuplicate)
	assert.Equal(1, tab.Len())
}

func Test_Table_LookupTagged(t *testing.T) {
	assert := assert.New(t)

	tab := New[*entry]()

	plain := &entry{label: "{q0}", tag: 0}
	colored := &entry{label: "{q0}", tag: 3}
	assert.NoError(tab.Insert(plain.label, plain.tag, plain))
	assert.NoError(tab.Insert(colored.label, colored.tag, colored))
	assert.Equal(2, tab.Len())

	got, ok := tab.LookupTagged("{q0}", 3)
	assert.True(ok)
	assert.Same(colored, got)

	got, ok = tab.LookupTagged("{q0}", 0)
	assert.True(ok)
	assert.Same(plain, got)

	_, ok = tab.LookupTagged("{q0}", 1)
	assert.False(ok)

	// plain lookup finds the first inserted entry under the label
	got, ok = tab.Lookup("{q0}")
	assert.True(ok)
	assert.Same(plain, got)
}

func Test_Table_EachVisitsInsertionsDuringIteration(t *testing.T) {
	assert := assert.New(t)

	tab := New[*entry]()
	assert.NoError(tab.Insert("a", 0, &entry{label: "a"}))
	assert.NoError(tab.Insert("b", 0, &entry{label: "b"}))

	var visited []string
	err := tab.Each(func(e *entry) error {
		visited = append(visited, e.label)
		if e.label == "b" {
			return tab.Insert("c", 0, &entry{label: "c"})
		}
		return nil
	})

	assert.NoError(err)
	assert.Equal([]string{"a", "b", "c"}, visited)
}

func Test_Table_Remove(t *testing.T) {
	assert := assert.New(t)

	tab := New[*entry]()
	assert.NoError(tab.Insert("a", 0, &entry{label: "a"}))
	assert.NoError(tab.Insert("a", 1, &entry{label: "a", tag: 1}))

	assert.True(tab.Remove("a", 0))
	assert.False(tab.Remove("a", 0))
	assert.Equal(1, tab.Len())

	// the tagged sibling survives and plain lookup now finds it
	got, ok := tab.Lookup("a")
	assert.True(ok)
	assert.Equal(uint8(1), got.tag)

	var visited []string
	_ = tab.Each(func(e *entry) error {
		visited = append(visited, e.label)
		return nil
	})
	assert.Len(visited, 1)
}
