package people

import (
	"bytes"

	"github.com/pstrahl/DataEng/internal/config"
	"github.com/pstrahl/DataEng/internal/pkg/logger"
	"github.com/pstrahl/DataEng/internal/profile"
	"github.com/pstrahl/DataEng/internal/table"
)

// Result summarizes a completed reconciliation run.
type Result struct {
	Constituents         int
	Emails               int
	PrimaryEmails        int
	Subscriptions        int
	ChapterSubscriptions int
	People               int
	AcquisitionDays      int
}

// Run executes the full reconciliation: read and profile the three
// exports, decode and filter them, merge subscriptions into emails and
// constituents into the result, resolve timestamps, and write the people
// and acquisition outputs. Nothing is written until every derivation has
// succeeded, so a failed run leaves no new output behind.
func Run(cfg *config.Config) (*Result, error) {
	consRaw, err := table.ReadFile(cfg.Inputs.Constituents, "constituents")
	if err != nil {
		return nil, err
	}
	emailsRaw, err := table.ReadFile(cfg.Inputs.Emails, "emails")
	if err != nil {
		return nil, err
	}
	subsRaw, err := table.ReadFile(cfg.Inputs.Subscriptions, "subscriptions")
	if err != nil {
		return nil, err
	}
	profile.Log(consRaw)
	profile.Log(emailsRaw)
	profile.Log(subsRaw)
	debugPreview(consRaw)
	debugPreview(emailsRaw)
	debugPreview(subsRaw)

	cons, err := DecodeConstituents(consRaw)
	if err != nil {
		return nil, err
	}
	emails, err := DecodePrimaryEmails(emailsRaw)
	if err != nil {
		return nil, err
	}
	subs, err := DecodeSubscriptions(subsRaw)
	if err != nil {
		return nil, err
	}

	primary := emails.FilterPrimary()
	chapter := subs.FilterChapter(cfg.Pipeline.ChapterID)
	logger.Info("exports decoded",
		"constituents", len(cons),
		"emails", len(emails),
		"primary_emails", len(primary),
		"subscriptions", len(subs),
		"chapter_subscriptions", len(chapter),
		"chapter_id", cfg.Pipeline.ChapterID,
	)
	consTable := cons.Table()
	primaryTable := primary.Table()
	chapterTable := chapter.Table()
	profile.Log(consTable)
	profile.Log(primaryTable)
	profile.Log(chapterTable)
	debugPreview(consTable)
	debugPreview(primaryTable)
	debugPreview(chapterTable)

	merged := MergeSubscriptions(primary, chapter, cfg.Pipeline.ChapterID)
	subMatched := 0
	for _, m := range merged {
		if m.SubMatched {
			subMatched++
		}
	}
	logger.Info("subscriptions merged", "rows", len(merged), "matched", subMatched)
	mergedTable := merged.Table()
	profile.Log(mergedTable)
	debugPreview(mergedTable)

	full := MergeConstituents(cons, merged)
	consMatched := 0
	for _, r := range full {
		if r.ConsMatched {
			consMatched++
		}
	}
	logger.Info("constituents merged", "rows", len(full), "matched", consMatched)
	fullTable := full.Table()
	profile.Log(fullTable)
	debugPreview(fullTable)

	persons := ResolvePeople(full)
	peopleTable := persons.Table()
	profile.Log(peopleTable)
	debugPreview(peopleTable)

	facts := persons.AcquisitionFacts()

	if err := peopleTable.WriteFile(cfg.Outputs.People, table.WriteOptions{Index: true, NullToken: "NULL"}); err != nil {
		return nil, err
	}
	logger.Info("people written", "path", cfg.Outputs.People, "rows", peopleTable.NumRows())

	factsTable := facts.Table()
	if err := factsTable.WriteFile(cfg.Outputs.AcquisitionFacts, table.WriteOptions{Index: true}); err != nil {
		return nil, err
	}
	logger.Info("acquisition facts written", "path", cfg.Outputs.AcquisitionFacts, "rows", factsTable.NumRows())

	return &Result{
		Constituents:         len(cons),
		Emails:               len(emails),
		PrimaryEmails:        len(primary),
		Subscriptions:        len(subs),
		ChapterSubscriptions: len(chapter),
		People:               len(persons),
		AcquisitionDays:      len(facts),
	}, nil
}

// debugPreview logs the first rows of a table at DEBUG, rendered the way
// the output file carries them.
func debugPreview(t *table.Table) {
	head := t.Head(5)
	if head.NumRows() == 0 {
		return
	}
	var buf bytes.Buffer
	if err := head.Write(&buf, table.WriteOptions{Index: true, NullToken: "NULL"}); err != nil {
		return
	}
	logger.Debug("table preview", "table", t.Name, "rows", head.NumRows(), "csv", buf.String())
}
