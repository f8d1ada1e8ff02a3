package list

import (
	"encoding/json"
	"fmt"
	"testing"
)

func TestClone(t *testing.T) {
	list := Of(1, 2, 3)
	list.Remove(1)
	list.PushFront(0)

	clone := list.Clone()
	assertList(t, clone, 0, 1, 3)

	clone.Set(0, 42)
	clone.PushBack(4)
	assertList(t, list, 0, 1, 3)
	assertList(t, clone, 42, 1, 3, 4)
}

func TestSlice(t *testing.T) {
	list := Of(1, 2, 3)
	list.Reverse()

	s := list.Slice()
	if len(s) != 3 || s[0] != 3 || s[1] != 2 || s[2] != 1 {
		t.Errorf("wrong slice of list elements: %v", s)
	}

	if s := new(List[int]).Slice(); len(s) != 0 {
		t.Errorf("slice of an empty list is not empty: %v", s)
	}
}

func TestJSON(t *testing.T) {
	type document struct {
		Tags *List[string] `json:"tags"`
	}

	doc := document{Tags: Of("A", "B")}
	doc.Tags.PushFront("Z")

	b, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	if s := string(b); s != `{"tags":["Z","A","B"]}` {
		t.Errorf("wrong json encoding: %s", s)
	}

	var out document
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatal(err)
	}
	if !Equal(doc.Tags, out.Tags) {
		t.Errorf("list mismatch after json round trip: %v != %v", doc.Tags, out.Tags)
	}
}

func TestJSONValueField(t *testing.T) {
	type document struct {
		Scores List[int] `json:"scores"`
	}

	var doc document
	doc.Scores.PushBack(2)
	doc.Scores.PushBack(3)
	doc.Scores.PushFront(1)

	b, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	if s := string(b); s != `{"scores":[1,2,3]}` {
		t.Errorf("wrong json encoding of a list held by value: %s", s)
	}

	var out document
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatal(err)
	}
	assertList(t, &out.Scores, 1, 2, 3)

	if b, err := json.Marshal(document{}); err != nil {
		t.Fatal(err)
	} else if s := string(b); s != `{"scores":[]}` {
		t.Errorf("wrong json encoding of an empty list: %s", s)
	}
}

func TestStringValue(t *testing.T) {
	var l List[int]
	l.PushBack(1)
	l.PushBack(2)

	if s := fmt.Sprint(l); s != "[1 2]" {
		t.Errorf("wrong formatting of a list held by value: got=%q want=%q", s, "[1 2]")
	}
	if s := fmt.Sprintf("%v", struct{ L List[int] }{L: l}); s != "{[1 2]}" {
		t.Errorf("wrong formatting of a list field held by value: got=%q want=%q", s, "{[1 2]}")
	}
}

func TestUnmarshalJSONReplaces(t *testing.T) {
	list := Of(1, 2, 3)

	if err := json.Unmarshal([]byte(`[4,5]`), list); err != nil {
		t.Fatal(err)
	}
	assertList(t, list, 4, 5)

	if err := json.Unmarshal([]byte(`["x"]`), list); err == nil {
		t.Error("decoding an array of the wrong type did not fail")
	}
	assertList(t, list, 4, 5)

	if err := json.Unmarshal([]byte(`[]`), list); err != nil {
		t.Fatal(err)
	}
	assertList(t, list)
}
