// File: services/intelligence/email.go
package intelligence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"meishimail/models"
)

// MsgGenerationFailed is shown when email generation exhausts its retries.
const MsgGenerationFailed = "メール文面の生成中にエラーが発生しました。もう一度お試しください。"

// GenerationError is an email generation failure.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("email generation: %s: %v", MsgGenerationFailed, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// EmailClient composes a draft outreach email from both contact records.
type EmailClient struct {
	Model       ModelClient
	MaxAttempts int
	RetryDelay  time.Duration
}

func NewEmailClient(model ModelClient) *EmailClient {
	return &EmailClient{
		Model:       model,
		MaxAttempts: DefaultMaxAttempts,
		RetryDelay:  DefaultRetryDelay,
	}
}

// GenerateEmail returns the email body only; subject handling is the
// caller's concern. Meeting metadata is optional and, when present, anchors
// the opening thanks to the event where the parties met.
func (c *EmailClient) GenerateEmail(ctx context.Context, partner, mine models.CompanyInfo, meeting *models.MeetingInfo) (string, error) {
	prompt := buildEmailPrompt(partner, mine, meeting)

	body, err := Retry(ctx, c.MaxAttempts, c.RetryDelay, func() (string, error) {
		return c.Model.GenerateText(ctx, prompt)
	})
	if err != nil {
		return "", &GenerationError{Err: err}
	}
	return body, nil
}

func buildEmailPrompt(partner, mine models.CompanyInfo, meeting *models.MeetingInfo) string {
	var b strings.Builder

	b.WriteString("以下の情報を元に、ビジネスメールを作成してください：\n\n")

	b.WriteString("相手企業情報：\n")
	fmt.Fprintf(&b, "- 会社名：%s\n", partner.CompanyName)
	fmt.Fprintf(&b, "- 担当者名：%s %s\n", partner.LastName, partner.FirstName)
	fmt.Fprintf(&b, "- 役職：%s\n\n", partner.Position)

	b.WriteString("自社情報：\n")
	fmt.Fprintf(&b, "- 会社名：%s\n", mine.CompanyName)
	fmt.Fprintf(&b, "- 担当者名：%s %s\n", mine.LastName, mine.FirstName)
	fmt.Fprintf(&b, "- 役職：%s\n", mine.Position)
	fmt.Fprintf(&b, "- 事業内容：%s\n\n", strings.Join(mine.Services, "、"))

	if meeting != nil {
		b.WriteString("出会った場面：\n")
		fmt.Fprintf(&b, "- イベント：%s\n", meeting.Event)
		fmt.Fprintf(&b, "- 場所：%s\n\n", meeting.Place)
	}

	b.WriteString("メールの要件：\n")
	if meeting != nil && meeting.Event != "" {
		fmt.Fprintf(&b, "1. 挨拶と、%sでお会いしたことのお礼\n", meeting.Event)
	} else {
		b.WriteString("1. 挨拶とお会いしたことのお礼\n")
	}
	b.WriteString("2. 自社の紹介（事業内容を含む）\n")
	b.WriteString("3. 打ち合わせのお願い\n")
	b.WriteString("4. 締めの挨拶\n\n")

	b.WriteString("注意点：\n")
	b.WriteString("- 日本のビジネスメールとして適切な敬語と形式を使用\n")
	b.WriteString("- 簡潔かつ丁寧な文章\n")
	b.WriteString("- 具体的な日時は指定せず、先方の都合の良い日時で調整させていただく形\n")
	b.WriteString("- 署名は含めない\n\n")

	b.WriteString("フォーマット：\n")
	b.WriteString("- 改行を適切に入れる\n")
	b.WriteString("- 結果は本文のみを返す")

	return b.String()
}
