package intelligence

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestKanaClient(model ModelClient) *KanaClient {
	return &KanaClient{Model: model, MaxAttempts: 3, RetryDelay: time.Millisecond}
}

func TestIsHiragana(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"やまだ", true},
		{"たろう", true},
		{"ぐろーばる", true},
		{"やまだ たろう", true},
		{"", false},
		{"山田", false},
		{"yamada", false},
		{"ヤマダ", false},
		{"やまだ1", false},
		{"やまだ。", false},
	}

	for _, test := range tests {
		if got := IsHiragana(test.input); got != test.want {
			t.Errorf("IsHiragana(%q) = %v, expected %v", test.input, got, test.want)
		}
	}
}

func TestToKanaShortCircuitsOnHiragana(t *testing.T) {
	stubSleep(t)
	model := &fakeModel{}
	client := newTestKanaClient(model)

	got := client.ToKana(context.Background(), "やまだしょうじ")
	if got != "やまだしょうじ" {
		t.Fatalf("ToKana = %q, expected input unchanged", got)
	}
	if model.textCalls != 0 {
		t.Fatalf("model called %d times, expected 0 for hiragana input", model.textCalls)
	}
}

func TestToKanaConvertsAndStripsNoise(t *testing.T) {
	stubSleep(t)
	model := &fakeModel{textResponses: []string{"やまだ しょうじ、\n"}}
	client := newTestKanaClient(model)

	got := client.ToKana(context.Background(), "山田商事")
	if got != "やまだしょうじ" {
		t.Fatalf("ToKana = %q, expected %q", got, "やまだしょうじ")
	}
	if model.textCalls != 1 {
		t.Fatalf("model called %d times, expected 1", model.textCalls)
	}
}

func TestToKanaEmptyInput(t *testing.T) {
	stubSleep(t)
	model := &fakeModel{}
	client := newTestKanaClient(model)

	if got := client.ToKana(context.Background(), ""); got != "" {
		t.Fatalf("ToKana(\"\") = %q, expected empty", got)
	}
	if model.textCalls != 0 {
		t.Fatalf("model called %d times, expected 0", model.textCalls)
	}
}

func TestToKanaSwallowsFailures(t *testing.T) {
	stubSleep(t)
	model := &fakeModel{textErr: errors.New("quota exceeded")}
	client := newTestKanaClient(model)

	if got := client.ToKana(context.Background(), "山田商事"); got != "" {
		t.Fatalf("ToKana = %q, expected empty reading on failure", got)
	}
	if model.textCalls != 3 {
		t.Fatalf("model called %d times, expected the full retry budget of 3", model.textCalls)
	}
}

func TestNamePairToKanaShortCircuitsOnHiragana(t *testing.T) {
	stubSleep(t)
	model := &fakeModel{}
	client := newTestKanaClient(model)

	got := client.NamePairToKana(context.Background(), "たろう", "やまだ")
	if got.FirstName != "たろう" || got.LastName != "やまだ" {
		t.Fatalf("NamePairToKana = %+v, expected pair unchanged", got)
	}
	if model.textCalls != 0 {
		t.Fatalf("model called %d times, expected 0 for hiragana pair", model.textCalls)
	}
}

func TestNamePairToKanaParsesJSONResponse(t *testing.T) {
	stubSleep(t)
	model := &fakeModel{textResponses: []string{`{"firstName": "たろう", "lastName": "やまだ"}`}}
	client := newTestKanaClient(model)

	got := client.NamePairToKana(context.Background(), "太郎", "山田")
	if got.FirstName != "たろう" || got.LastName != "やまだ" {
		t.Fatalf("NamePairToKana = %+v", got)
	}
}

func TestNamePairToKanaUnparseableResponseYieldsEmptyPair(t *testing.T) {
	stubSleep(t)
	model := &fakeModel{textResponses: []string{"ごめんなさい、できませんでした"}}
	client := newTestKanaClient(model)

	got := client.NamePairToKana(context.Background(), "太郎", "山田")
	if got.FirstName != "" || got.LastName != "" {
		t.Fatalf("NamePairToKana = %+v, expected empty pair", got)
	}
}

func TestNamePairToKanaEmptyInputs(t *testing.T) {
	stubSleep(t)
	model := &fakeModel{}
	client := newTestKanaClient(model)

	got := client.NamePairToKana(context.Background(), "", "")
	if got.FirstName != "" || got.LastName != "" {
		t.Fatalf("NamePairToKana = %+v, expected empty pair", got)
	}
	if model.textCalls != 0 {
		t.Fatalf("model called %d times, expected 0", model.textCalls)
	}
}
