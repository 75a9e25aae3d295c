// File: services/intelligence/kana.go
package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode"

	"meishimail/utils"

	"go.uber.org/zap"
)

// NamePair is a paired phonetic reading for a personal name.
type NamePair struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// IsHiragana reports whether s is non-empty and consists solely of hiragana,
// the long vowel mark and whitespace. Such input is already phonetic; sending
// it to the model would waste a call and risks double-conversion artifacts.
func IsHiragana(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r >= 'ぁ' && r <= 'ん' {
			continue
		}
		if r == 'ー' || unicode.IsSpace(r) {
			continue
		}
		return false
	}
	return true
}

const kanaSinglePrompt = `Convert this text to Japanese hiragana. Return ONLY hiragana text, no explanations.
Text: %s

Rules:
- If input is kanji, convert to its hiragana reading
- If input is English, convert to natural Japanese pronunciation
- Use only hiragana (no katakana)
- For example:
  - "山田商事" → "やまだしょうじ"
  - "株式会社グローバル" → "かぶしきがいしゃぐろーばる"
  - "Smith Corporation" → "すみすこーぽれーしょん"

Return ONLY the hiragana text.`

const kanaPairPrompt = `Convert these names to Japanese hiragana. Return ONLY a JSON object with firstName and lastName keys.
First Name: %s
Last Name: %s

Rules:
- If input is kanji, convert to its hiragana reading
- If input is English, convert to natural Japanese pronunciation
- Use only hiragana (no katakana)
- For example:
  - "山田" → "やまだ"
  - "太郎" → "たろう"
  - "Smith" → "すみす"
  - "John" → "じょん"

Example response format:
{"firstName": "たろう", "lastName": "やまだ"}`

// KanaClient turns names and company strings into their hiragana readings.
// A missing reading is non-fatal to the wizard, so every failure path
// degrades to the empty reading instead of surfacing an error.
type KanaClient struct {
	Model       ModelClient
	MaxAttempts int
	RetryDelay  time.Duration
}

func NewKanaClient(model ModelClient) *KanaClient {
	return &KanaClient{
		Model:       model,
		MaxAttempts: DefaultMaxAttempts,
		RetryDelay:  DefaultRetryDelay,
	}
}

// ToKana returns the hiragana reading of text. Input that is already
// hiragana is returned unchanged without a model call. On any failure the
// reading is the empty string.
func (c *KanaClient) ToKana(ctx context.Context, text string) string {
	if text == "" {
		return ""
	}
	if IsHiragana(text) {
		return text
	}

	resp, err := Retry(ctx, c.MaxAttempts, c.RetryDelay, func() (string, error) {
		return c.Model.GenerateText(ctx, fmt.Sprintf(kanaSinglePrompt, text))
	})
	if err != nil {
		utils.GetLogger().Warn("Kana conversion failed", zap.String("text", text), zap.Error(err))
		return ""
	}

	return stripKanaNoise(resp)
}

// NamePairToKana converts a first/last name pair in one call. A pair that is
// already hiragana is returned unchanged without a model call; an
// unparseable response yields an empty pair rather than an error.
func (c *KanaClient) NamePairToKana(ctx context.Context, firstName, lastName string) NamePair {
	if firstName == "" && lastName == "" {
		return NamePair{}
	}
	if IsHiragana(firstName) && IsHiragana(lastName) {
		return NamePair{FirstName: firstName, LastName: lastName}
	}

	resp, err := Retry(ctx, c.MaxAttempts, c.RetryDelay, func() (string, error) {
		return c.Model.GenerateText(ctx, fmt.Sprintf(kanaPairPrompt, firstName, lastName))
	})
	if err != nil {
		utils.GetLogger().Warn("Kana pair conversion failed", zap.Error(err))
		return NamePair{}
	}

	span, ok := FirstJSONObject(resp)
	if !ok {
		return NamePair{}
	}
	var pair NamePair
	if err := json.Unmarshal([]byte(span), &pair); err != nil {
		return NamePair{}
	}
	return pair
}

// stripKanaNoise removes whitespace, line breaks and Japanese punctuation the
// model tends to append around a bare reading.
func stripKanaNoise(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '、' || r == '。' {
			return -1
		}
		return r
	}, s)
}
