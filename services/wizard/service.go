// File: services/wizard/service.go
package wizard

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"meishimail/models"
	"meishimail/services/intelligence"
	"meishimail/utils"

	"go.uber.org/zap"
)

// Step names the wizard screen the client should show next. The flow is
// linear with one branch: a double-sided capture loops once through the
// capture screen before moving on.
type Step string

const (
	StepCaptureMyCard      Step = "capture-my-card"
	StepEditMyInfo         Step = "edit-my-info"
	StepInputMeeting       Step = "input-meeting"
	StepCapturePartnerCard Step = "capture-partner-card"
	StepEditPartnerInfo    Step = "edit-partner-info"
	StepComposeEmail       Step = "compose-email"
	StepConfirmEmail       Step = "confirm-email"
)

// Service-layer limits enforced by the edit screens.
const (
	MaxServices     = 10
	MaxServiceRunes = 200
)

var (
	ErrUnknownOwner    = errors.New("unknown card owner")
	ErrMissingRecords  = errors.New("both contact records are required")
	ErrTooManyServices = fmt.Errorf("services list may hold at most %d entries", MaxServices)
	ErrServiceTooLong  = fmt.Errorf("a service entry may hold at most %d characters", MaxServiceRunes)
)

// MsgMissingInfo is shown when the compose screen is reached before both
// cards have been captured.
const MsgMissingInfo = "必要な情報が不足しています。"

// CardExtractor derives contact fields from a card image.
type CardExtractor interface {
	ExtractCard(ctx context.Context, image []byte, backSide bool) (models.CardExtraction, error)
}

// Transliterator produces hiragana readings. Failures degrade to empty
// readings inside the implementation; the wizard never branches on them.
type Transliterator interface {
	ToKana(ctx context.Context, text string) string
	NamePairToKana(ctx context.Context, firstName, lastName string) intelligence.NamePair
}

// EmailGenerator composes the outreach email body.
type EmailGenerator interface {
	GenerateEmail(ctx context.Context, partner, mine models.CompanyInfo, meeting *models.MeetingInfo) (string, error)
}

// Service owns all wizard state transitions. Every mutation loads the
// session, applies one setter-style change and saves it back; screens never
// touch the store directly.
type Service struct {
	Store     SessionStore
	Extractor CardExtractor
	Kana      Transliterator
	Email     EmailGenerator
}

// CaptureResult is the outcome of one shutter press.
type CaptureResult struct {
	Record   *models.CompanyInfo    `json:"record"`
	Progress models.CaptureProgress `json:"progress"`
	Next     Step                   `json:"next"`
}

// StartSession creates an empty session.
func (s *Service) StartSession(ctx context.Context) (*models.WizardSession, error) {
	return s.Store.Create(ctx)
}

// Snapshot returns the current session state (confirm screen, dev tooling).
func (s *Service) Snapshot(ctx context.Context, sessID string) (*models.WizardSession, error) {
	return s.Store.Get(ctx, sessID)
}

// Discard drops the session.
func (s *Service) Discard(ctx context.Context, sessID string) error {
	return s.Store.Delete(ctx, sessID)
}

// StartCapture resets the owner's capture progress for a fresh flow. The
// existing record, if any, is kept; only the transient side/double flags
// reset when a capture flow restarts from its first screen.
func (s *Service) StartCapture(ctx context.Context, sessID string, owner models.CardOwner, doubleSided bool) (models.CaptureProgress, error) {
	if !owner.Valid() {
		return "", ErrUnknownOwner
	}
	sess, err := s.Store.Get(ctx, sessID)
	if err != nil {
		return "", err
	}

	progress := models.SingleFront
	if doubleSided {
		progress = models.DoubleFront
	}
	sess.SetProgress(owner, progress)

	if err := s.Store.Save(ctx, sess); err != nil {
		return "", err
	}
	return progress, nil
}

// Capture runs one extraction and folds the result into the session.
//
// Front faces populate the record fresh. Back faces merge into the existing
// record; a back face arriving with no record to merge into (front never
// captured) populates fresh instead, the same way a front capture would.
func (s *Service) Capture(ctx context.Context, sessID string, owner models.CardOwner, image []byte) (*CaptureResult, error) {
	if !owner.Valid() {
		return nil, ErrUnknownOwner
	}
	sess, err := s.Store.Get(ctx, sessID)
	if err != nil {
		return nil, err
	}

	progress := sess.Progress(owner)
	backSide := progress.Side() == models.SideBack

	ext, err := s.Extractor.ExtractCard(ctx, image, backSide)
	if err != nil {
		return nil, err
	}

	next := editStep(owner)
	if backSide && sess.Record(owner) != nil {
		merged := MergeBackFace(*sess.Record(owner), ext)
		sess.SetRecord(owner, &merged)
	} else {
		record := s.freshRecord(ctx, owner, ext)
		sess.SetRecord(owner, record)
		if progress == models.DoubleFront {
			sess.SetProgress(owner, progress.Advance())
			next = captureStep(owner)
		}
	}

	if err := s.Store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return &CaptureResult{
		Record:   sess.Record(owner),
		Progress: sess.Progress(owner),
		Next:     next,
	}, nil
}

// freshRecord builds a record from a front-face extraction. The user's own
// card gets its phonetic readings at capture time: model-supplied alphabetic
// readings are transliterated individually when present, otherwise the kanji
// name pair is converted in one call. The partner card's readings stay empty.
func (s *Service) freshRecord(ctx context.Context, owner models.CardOwner, ext models.CardExtraction) *models.CompanyInfo {
	info := &models.CompanyInfo{
		CompanyName:   ext.CompanyName,
		FirstName:     ext.FirstName,
		LastName:      ext.LastName,
		PersonalPhone: ext.PersonalPhone,
		CompanyPhone:  ext.CompanyPhone,
		FaxNumber:     ext.FaxNumber,
		Email:         ext.Email,
		Address:       ext.Address,
		Position:      ext.Position,
		Website:       ext.Website,
		Services:      append([]string{}, ext.Services...),
	}

	if owner == models.OwnerMy {
		if ext.FirstNameReading != "" && ext.LastNameReading != "" {
			info.FirstNameKana = s.Kana.ToKana(ctx, ext.FirstNameReading)
			info.LastNameKana = s.Kana.ToKana(ctx, ext.LastNameReading)
		} else {
			pair := s.Kana.NamePairToKana(ctx, ext.FirstName, ext.LastName)
			info.FirstNameKana = pair.FirstName
			info.LastNameKana = pair.LastName
		}
		info.CompanyNameKana = s.Kana.ToKana(ctx, ext.CompanyName)
	}
	return info
}

// MergeBackFace folds a back-face extraction into an existing record. A
// field is overwritten only when the new value is non-empty; services become
// the duplicate-free union with existing entries first.
func MergeBackFace(existing models.CompanyInfo, ext models.CardExtraction) models.CompanyInfo {
	merged := existing

	overwrite := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	overwrite(&merged.PersonalPhone, ext.PersonalPhone)
	overwrite(&merged.CompanyPhone, ext.CompanyPhone)
	overwrite(&merged.FaxNumber, ext.FaxNumber)
	overwrite(&merged.Address, ext.Address)
	overwrite(&merged.Position, ext.Position)
	overwrite(&merged.Website, ext.Website)

	if len(ext.Services) > 0 {
		merged.Services = unionServices(existing.Services, ext.Services)
	}
	return merged
}

func unionServices(existing, added []string) []string {
	out := make([]string, 0, len(existing)+len(added))
	seen := make(map[string]struct{}, len(existing)+len(added))
	for _, s := range existing {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	for _, s := range added {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// EditForm carries every editable field of a contact record.
type EditForm struct {
	CompanyName   string   `json:"companyName"`
	FirstName     string   `json:"firstName"`
	LastName      string   `json:"lastName"`
	PersonalPhone string   `json:"personalPhone"`
	CompanyPhone  string   `json:"companyPhone"`
	FaxNumber     string   `json:"faxNumber"`
	Email         string   `json:"email"`
	Address       string   `json:"address"`
	Position      string   `json:"position"`
	Website       string   `json:"website"`
	Services      []string `json:"services"`
}

// SubmitEdit writes the reviewed form back to the session. Non-kana fields
// are taken verbatim; the three kana fields are cleared to empty strings on
// every save, discarding readings computed at capture time.
func (s *Service) SubmitEdit(ctx context.Context, sessID string, owner models.CardOwner, form EditForm) (Step, *models.CompanyInfo, error) {
	if !owner.Valid() {
		return "", nil, ErrUnknownOwner
	}
	if len(form.Services) > MaxServices {
		return "", nil, ErrTooManyServices
	}
	for _, svc := range form.Services {
		if utf8.RuneCountInString(svc) > MaxServiceRunes {
			return "", nil, ErrServiceTooLong
		}
	}

	sess, err := s.Store.Get(ctx, sessID)
	if err != nil {
		return "", nil, err
	}

	record := &models.CompanyInfo{
		CompanyName:     form.CompanyName,
		CompanyNameKana: "",
		FirstName:       form.FirstName,
		LastName:        form.LastName,
		FirstNameKana:   "",
		LastNameKana:    "",
		PersonalPhone:   form.PersonalPhone,
		CompanyPhone:    form.CompanyPhone,
		FaxNumber:       form.FaxNumber,
		Email:           form.Email,
		Address:         form.Address,
		Position:        form.Position,
		Website:         form.Website,
		Services:        append([]string{}, form.Services...),
	}
	sess.SetRecord(owner, record)

	if err := s.Store.Save(ctx, sess); err != nil {
		return "", nil, err
	}

	next := StepInputMeeting
	if owner == models.OwnerPartner {
		next = StepComposeEmail
	}
	return next, record, nil
}

// SetMeeting stores the event/place metadata used by the richer email prompt.
func (s *Service) SetMeeting(ctx context.Context, sessID string, info models.MeetingInfo) (Step, error) {
	sess, err := s.Store.Get(ctx, sessID)
	if err != nil {
		return "", err
	}
	sess.Meeting = &info
	if err := s.Store.Save(ctx, sess); err != nil {
		return "", err
	}
	return StepCapturePartnerCard, nil
}

// ComposeEmail generates the draft body and default subject and stores both
// on the session. Calling it again regenerates: nothing cancels a still
// pending previous call, so the last call to settle overwrites the draft.
func (s *Service) ComposeEmail(ctx context.Context, sessID string) (subject, body string, err error) {
	sess, err := s.Store.Get(ctx, sessID)
	if err != nil {
		return "", "", err
	}
	if sess.MyCompany == nil || sess.PartnerCompany == nil {
		return "", "", ErrMissingRecords
	}

	body, err = s.Email.GenerateEmail(ctx, *sess.PartnerCompany, *sess.MyCompany, sess.Meeting)
	if err != nil {
		return "", "", err
	}
	subject = fmt.Sprintf("%s様 ご面談のお願い", sess.PartnerCompany.CompanyName)

	sess.EmailSubject = subject
	sess.EmailBody = body
	if err := s.Store.Save(ctx, sess); err != nil {
		return "", "", err
	}

	utils.GetLogger().Info("Email draft generated",
		zap.String("session", sessID),
		zap.Int("bodyLength", len(body)))
	return subject, body, nil
}

// UpdateDraft saves user edits to the draft subject and body.
func (s *Service) UpdateDraft(ctx context.Context, sessID, subject, body string) error {
	sess, err := s.Store.Get(ctx, sessID)
	if err != nil {
		return err
	}
	sess.EmailSubject = subject
	sess.EmailBody = body
	return s.Store.Save(ctx, sess)
}

// SendEmail builds the mailto handoff URI for the current draft. The
// confirmation step that follows is purely informational; delivery is the
// mail client's business.
func (s *Service) SendEmail(ctx context.Context, sessID string) (string, Step, error) {
	sess, err := s.Store.Get(ctx, sessID)
	if err != nil {
		return "", "", err
	}
	if sess.PartnerCompany == nil {
		return "", "", ErrMissingRecords
	}
	uri := BuildMailto(sess.PartnerCompany.Email, sess.EmailSubject, sess.EmailBody)
	return uri, StepConfirmEmail, nil
}

func editStep(owner models.CardOwner) Step {
	if owner == models.OwnerMy {
		return StepEditMyInfo
	}
	return StepEditPartnerInfo
}

func captureStep(owner models.CardOwner) Step {
	if owner == models.OwnerMy {
		return StepCaptureMyCard
	}
	return StepCapturePartnerCard
}
