package models

import "time"

// CardSide is the face of a card being captured.
type CardSide string

const (
	SideFront CardSide = "front"
	SideBack  CardSide = "back"
)

// CaptureProgress tracks one contact record's capture flow as a tagged
// variant, so "double-sided with an unspecified side" cannot be represented.
type CaptureProgress string

const (
	// SingleFront: single-sided capture, only the front face is taken.
	SingleFront CaptureProgress = "single_front"
	// DoubleFront: double-sided capture, front face still pending.
	DoubleFront CaptureProgress = "double_front"
	// DoubleBack: double-sided capture, front done, back face pending.
	DoubleBack CaptureProgress = "double_back"
)

// DoubleSided reports whether the flow captures both faces.
func (p CaptureProgress) DoubleSided() bool {
	return p == DoubleFront || p == DoubleBack
}

// Side is the face the next capture applies to.
func (p CaptureProgress) Side() CardSide {
	if p == DoubleBack {
		return SideBack
	}
	return SideFront
}

// Advance moves a double-sided flow from front to back. Single-sided flows
// and flows already at the back are terminal.
func (p CaptureProgress) Advance() CaptureProgress {
	if p == DoubleFront {
		return DoubleBack
	}
	return p
}

// CardOwner identifies which contact record a wizard operation targets.
type CardOwner string

const (
	OwnerMy      CardOwner = "my"
	OwnerPartner CardOwner = "partner"
)

// Valid reports whether the owner is one of the two known records.
func (o CardOwner) Valid() bool {
	return o == OwnerMy || o == OwnerPartner
}

// WizardSession is the whole wizard state for one user session. It lives in
// the session cache under a TTL and is never persisted anywhere else; a nil
// company pointer means that record has not been captured yet.
type WizardSession struct {
	ID              string          `json:"id"`
	MyCompany       *CompanyInfo    `json:"myCompanyInfo"`
	PartnerCompany  *CompanyInfo    `json:"partnerCompanyInfo"`
	Meeting         *MeetingInfo    `json:"meetingInfo"`
	MyProgress      CaptureProgress `json:"myProgress"`
	PartnerProgress CaptureProgress `json:"partnerProgress"`
	EmailSubject    string          `json:"emailSubject"`
	EmailBody       string          `json:"emailBody"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// Record returns the contact record for the given owner, nil when absent.
func (s *WizardSession) Record(owner CardOwner) *CompanyInfo {
	if owner == OwnerMy {
		return s.MyCompany
	}
	return s.PartnerCompany
}

// SetRecord stores the contact record for the given owner.
func (s *WizardSession) SetRecord(owner CardOwner, info *CompanyInfo) {
	if owner == OwnerMy {
		s.MyCompany = info
		return
	}
	s.PartnerCompany = info
}

// Progress returns the capture progress for the given owner.
func (s *WizardSession) Progress(owner CardOwner) CaptureProgress {
	if owner == OwnerMy {
		return s.MyProgress
	}
	return s.PartnerProgress
}

// SetProgress stores the capture progress for the given owner.
func (s *WizardSession) SetProgress(owner CardOwner, p CaptureProgress) {
	if owner == OwnerMy {
		s.MyProgress = p
		return
	}
	s.PartnerProgress = p
}
