package models

import "testing"

func TestCaptureProgress(t *testing.T) {
	tests := []struct {
		progress    CaptureProgress
		doubleSided bool
		side        CardSide
		advanced    CaptureProgress
	}{
		{SingleFront, false, SideFront, SingleFront},
		{DoubleFront, true, SideFront, DoubleBack},
		{DoubleBack, true, SideBack, DoubleBack},
	}
	for _, tt := range tests {
		t.Run(string(tt.progress), func(t *testing.T) {
			if got := tt.progress.DoubleSided(); got != tt.doubleSided {
				t.Errorf("DoubleSided() = %v, want %v", got, tt.doubleSided)
			}
			if got := tt.progress.Side(); got != tt.side {
				t.Errorf("Side() = %q, want %q", got, tt.side)
			}
			if got := tt.progress.Advance(); got != tt.advanced {
				t.Errorf("Advance() = %q, want %q", got, tt.advanced)
			}
		})
	}
}

func TestCardOwnerValid(t *testing.T) {
	if !OwnerMy.Valid() || !OwnerPartner.Valid() {
		t.Error("known owners reported invalid")
	}
	if CardOwner("other").Valid() || CardOwner("").Valid() {
		t.Error("unknown owner reported valid")
	}
}

func TestSessionOwnerHelpers(t *testing.T) {
	sess := &WizardSession{}

	mine := &CompanyInfo{CompanyName: "自社"}
	theirs := &CompanyInfo{CompanyName: "相手"}
	sess.SetRecord(OwnerMy, mine)
	sess.SetRecord(OwnerPartner, theirs)
	if sess.Record(OwnerMy) != mine || sess.MyCompany != mine {
		t.Error("my record not routed to MyCompany")
	}
	if sess.Record(OwnerPartner) != theirs || sess.PartnerCompany != theirs {
		t.Error("partner record not routed to PartnerCompany")
	}

	sess.SetProgress(OwnerMy, DoubleBack)
	sess.SetProgress(OwnerPartner, DoubleFront)
	if sess.Progress(OwnerMy) != DoubleBack || sess.Progress(OwnerPartner) != DoubleFront {
		t.Errorf("progress routing wrong: %q/%q", sess.MyProgress, sess.PartnerProgress)
	}
}
