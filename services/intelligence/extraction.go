// File: services/intelligence/extraction.go
package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"meishimail/models"
	"meishimail/utils"

	"go.uber.org/zap"
)

// User-facing messages for the three extraction failure modes. The wizard
// shows these inline on the capture screen.
const (
	MsgExtractionNoJSON    = "名刺から情報を抽出できませんでした。名刺の撮影角度を調整して、再度お試しください。"
	MsgExtractionBadJSON   = "名刺の情報を正しく解析できませんでした。名刺全体が写るように撮影してください。"
	MsgExtractionTransport = "名刺の画像を処理できませんでした。もう一度撮影してください。"
)

// ExtractionError is a card extraction failure carrying a user-facing
// message that suggests re-capturing the card.
type ExtractionError struct {
	Message string
	Err     error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("card extraction: %s: %v", e.Message, e.Err)
	}
	return "card extraction: " + e.Message
}

func (e *ExtractionError) Unwrap() error { return e.Err }

const extractionPromptBase = `Extract information from this business card image and return it in JSON format.

Fields to extract:
- companyName: Company name in Japanese
- email: Email address in lowercase
- firstName: First name in Japanese
- lastName: Last name in Japanese
- firstNameReading: First name reading in alphabet (if present under the name)
- lastNameReading: Last name reading in alphabet (if present under the name)
- personalPhone: Personal phone number (format: 090-1234-5678)
- companyPhone: Company phone number (format: 03-1234-5678)
- faxNumber: Fax number (format: 03-1234-5678)
- address: Full address in Japanese
- position: Job title in Japanese
- website: Website URL
- services: Array of business services or products (each item should be a complete phrase)

Pay special attention to:
- For company name, find the exact text that includes 株式会社, 有限会社, or 合同会社. Do not modify or add these prefixes.
- Look for alphabetic text under Japanese names, which is likely the reading (furigana)
- Include these readings in firstNameReading and lastNameReading fields
`

const extractionPromptBackSide = `- For back side, focus on:
  - Business services or products listed (very important)
  - Contact information like phone numbers, fax numbers, and addresses
  - These are commonly found on the back side of business cards
`

const extractionPromptTail = `
Return ONLY valid JSON with these exact field names. Example:
{
  "companyName": "株式会社サンプル",
  "firstName": "太郎",
  "lastName": "山田",
  "firstNameReading": "taro",
  "lastNameReading": "yamada",
  "personalPhone": "090-1234-5678",
  "companyPhone": "03-1234-5678",
  "faxNumber": "03-1234-5678",
  "email": "taro.yamada@sample.co.jp",
  "address": "東京都千代田区丸の内1-1-1",
  "position": "営業部長",
  "website": "https://www.sample.co.jp",
  "services": ["ソフトウェア開発", "システムコンサルティング", "クラウドサービス"]
}`

// ExtractionClient derives structured contact fields from a card image via
// the hosted model.
type ExtractionClient struct {
	Model       ModelClient
	MaxAttempts int
	RetryDelay  time.Duration
}

func NewExtractionClient(model ModelClient) *ExtractionClient {
	return &ExtractionClient{
		Model:       model,
		MaxAttempts: DefaultMaxAttempts,
		RetryDelay:  DefaultRetryDelay,
	}
}

// ExtractCard sends one JPEG frame to the model and returns the normalized
// extraction result. When backSide is set the prompt emphasizes the fields
// commonly printed on the reverse face (services, phone, fax, address).
// The whole call runs under the retry policy; the returned error is always
// an *ExtractionError.
func (c *ExtractionClient) ExtractCard(ctx context.Context, image []byte, backSide bool) (models.CardExtraction, error) {
	prompt := extractionPromptBase
	if backSide {
		prompt += extractionPromptBackSide
	}
	prompt += extractionPromptTail

	parsed, err := Retry(ctx, c.MaxAttempts, c.RetryDelay, func() (map[string]any, error) {
		text, err := c.Model.GenerateFromImage(ctx, prompt, "image/jpeg", image)
		if err != nil {
			return nil, &ExtractionError{Message: MsgExtractionTransport, Err: err}
		}

		span, ok := FirstJSONObject(text)
		if !ok {
			return nil, &ExtractionError{Message: MsgExtractionNoJSON}
		}

		var raw map[string]any
		if err := json.Unmarshal([]byte(span), &raw); err != nil {
			utils.GetLogger().Warn("Card extraction JSON parse failed", zap.Error(err))
			return nil, &ExtractionError{Message: MsgExtractionBadJSON, Err: err}
		}
		return raw, nil
	})
	if err != nil {
		return models.CardExtraction{}, err
	}

	return normalizeExtraction(parsed), nil
}

// normalizeExtraction defaults every field to an empty string or list so
// callers never see an absent field.
func normalizeExtraction(raw map[string]any) models.CardExtraction {
	return models.CardExtraction{
		CompanyName:      stringField(raw, "companyName"),
		FirstName:        stringField(raw, "firstName"),
		LastName:         stringField(raw, "lastName"),
		FirstNameReading: stringField(raw, "firstNameReading"),
		LastNameReading:  stringField(raw, "lastNameReading"),
		PersonalPhone:    stringField(raw, "personalPhone"),
		CompanyPhone:     stringField(raw, "companyPhone"),
		FaxNumber:        stringField(raw, "faxNumber"),
		Email:            stringField(raw, "email"),
		Address:          stringField(raw, "address"),
		Position:         stringField(raw, "position"),
		Website:          stringField(raw, "website"),
		Services:         stringSliceField(raw, "services"),
	}
}

func stringField(raw map[string]any, key string) string {
	if v, ok := raw[key].(string); ok {
		return v
	}
	return ""
}

func stringSliceField(raw map[string]any, key string) []string {
	items, ok := raw[key].([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
