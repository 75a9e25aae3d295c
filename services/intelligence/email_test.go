package intelligence

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"meishimail/models"
)

func newTestEmailClient(model ModelClient) *EmailClient {
	return &EmailClient{Model: model, MaxAttempts: 3, RetryDelay: time.Millisecond}
}

func sampleParties() (partner, mine models.CompanyInfo) {
	partner = models.CompanyInfo{
		CompanyName: "株式会社サンプル",
		FirstName:   "太郎",
		LastName:    "山田",
		Position:    "営業部長",
		Email:       "taro.yamada@sample.co.jp",
	}
	mine = models.CompanyInfo{
		CompanyName: "株式会社テック",
		FirstName:   "花子",
		LastName:    "佐藤",
		Position:    "代表取締役",
		Services:    []string{"ソフトウェア開発", "クラウドサービス"},
	}
	return partner, mine
}

func TestGenerateEmailPromptEmbedsBothParties(t *testing.T) {
	stubSleep(t)
	model := &fakeModel{textResponses: []string{"山田様\n\nお世話になっております。"}}
	client := newTestEmailClient(model)
	partner, mine := sampleParties()

	body, err := client.GenerateEmail(context.Background(), partner, mine, nil)
	if err != nil {
		t.Fatalf("GenerateEmail returned error: %v", err)
	}
	if body == "" {
		t.Fatal("GenerateEmail returned empty body")
	}

	for _, want := range []string{
		"株式会社サンプル",
		"山田 太郎",
		"株式会社テック",
		"佐藤 花子",
		"ソフトウェア開発、クラウドサービス",
		"署名は含めない",
		"結果は本文のみを返す",
	} {
		if !strings.Contains(model.lastPrompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if strings.Contains(model.lastPrompt, "出会った場面") {
		t.Error("prompt mentions the meeting block without meeting info")
	}
}

func TestGenerateEmailPromptIncludesMeeting(t *testing.T) {
	stubSleep(t)
	model := &fakeModel{textResponses: []string{"本文"}}
	client := newTestEmailClient(model)
	partner, mine := sampleParties()
	meeting := &models.MeetingInfo{Event: "IT展示会2026", Place: "東京ビッグサイト"}

	if _, err := client.GenerateEmail(context.Background(), partner, mine, meeting); err != nil {
		t.Fatalf("GenerateEmail returned error: %v", err)
	}
	for _, want := range []string{"IT展示会2026", "東京ビッグサイト", "IT展示会2026でお会いしたことのお礼"} {
		if !strings.Contains(model.lastPrompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestGenerateEmailFailureAfterRetries(t *testing.T) {
	stubSleep(t)
	model := &fakeModel{textErr: errors.New("unavailable")}
	client := newTestEmailClient(model)
	partner, mine := sampleParties()

	_, err := client.GenerateEmail(context.Background(), partner, mine, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("error type %T, expected *GenerationError", err)
	}
	if model.textCalls != 3 {
		t.Fatalf("model called %d times, expected 3", model.textCalls)
	}
}
