// Package people implements the constituent reconciliation pipeline: it
// decodes the three CRM exports into typed record sets, filters them to
// primary emails and the target chapter, joins subscription state into
// emails and constituents into the result, resolves inconsistent
// create/modify timestamps, and derives per-day acquisition counts.
//
// Every stage takes the prior stage's record set and returns a freshly
// built one; no stage mutates its input. Stages run once each, in order.
package people

import "time"

// Constituent is one person row from the constituents export, narrowed
// to the reconciliation columns. Source is empty when the export had no
// acquisition code for the row.
type Constituent struct {
	ID       int64
	Source   string
	Created  time.Time
	Modified time.Time
}

// Constituents is a decoded constituents record set.
type Constituents []Constituent

// PrimaryEmail is one row from the email export. Decoding keeps every
// row; FilterPrimary narrows to the primary-flagged ones.
type PrimaryEmail struct {
	EmailID   int64
	ConsID    int64
	IsPrimary bool
	Email     string
	Created   time.Time
	Modified  time.Time
}

// PrimaryEmails is a decoded email record set.
type PrimaryEmails []PrimaryEmail

// ChapterSubscription is one row from the chapter subscription export.
// Everything but the owning email id is nullable in the source.
type ChapterSubscription struct {
	EmailID   int64
	ChapterID *int64
	Unsub     *bool
	UnsubAt   *time.Time
	Modified  *time.Time
}

// ChapterSubscriptions is a decoded subscription record set.
type ChapterSubscriptions []ChapterSubscription

// EmailSubscription is a primary email joined with its chapter
// subscription state. Rows with no subscription match carry the
// default-subscribed fill (the configured chapter, not unsubscribed) and
// SubMatched=false.
type EmailSubscription struct {
	EmailID       int64
	ConsID        int64
	Email         string
	EmailCreated  time.Time
	EmailModified time.Time
	ChapterID     int64
	Unsub         bool
	UnsubAt       *time.Time
	SubModified   *time.Time
	SubMatched    bool
}

// EmailSubscriptions is the subscription-merge output record set.
type EmailSubscriptions []EmailSubscription

// ConstituentEmail is an email-subscription row joined with its
// constituent. Constituent fields are nil/empty when no constituent row
// matched; ConsMatched records the provenance.
type ConstituentEmail struct {
	ConsID       int64
	EmailID      int64
	Email        string
	Source       string
	ChapterID    int64
	Unsub        bool
	ConsCreated  *time.Time
	ConsModified *time.Time
	ConsMatched  bool
}

// ConstituentEmails is the constituent-merge output record set.
type ConstituentEmails []ConstituentEmail

// Person is one row of the people output. CreatedAt/UpdatedAt are nil
// when the row had no constituent match to resolve timestamps from.
type Person struct {
	Email     string
	Code      string
	Unsub     bool
	CreatedAt *time.Time
	UpdatedAt *time.Time
}

// People is the final person record set.
type People []Person

// AcquisitionFact counts the people created on one recurring calendar
// day, keyed by the year-independent "MM-DD" of their created timestamp.
type AcquisitionFact struct {
	Date  string
	Count int
}

// AcquisitionFacts is the derived acquisition record set, ordered by day.
type AcquisitionFacts []AcquisitionFact
