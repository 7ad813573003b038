package people

import (
	"strconv"
	"time"

	"github.com/pstrahl/DataEng/internal/table"
)

// Table projections let each typed record set be profiled and written
// with the same machinery as the raw CSV inputs. Null cells stand in for
// nil pointers and for empty free-text values.

func idCell(v int64) table.Cell {
	return table.Cell{Value: strconv.FormatInt(v, 10)}
}

func idPtrCell(v *int64) table.Cell {
	if v == nil {
		return table.Cell{Null: true}
	}
	return idCell(*v)
}

func flagCell(v bool) table.Cell {
	if v {
		return table.Cell{Value: "1"}
	}
	return table.Cell{Value: "0"}
}

func flagPtrCell(v *bool) table.Cell {
	if v == nil {
		return table.Cell{Null: true}
	}
	return flagCell(*v)
}

func textCell(v string) table.Cell {
	if v == "" {
		return table.Cell{Null: true}
	}
	return table.Cell{Value: v}
}

// FormatTimestamp renders a resolved timestamp the way the outputs carry
// it: date only at midnight, date and time otherwise.
func FormatTimestamp(t time.Time) string {
	if h, m, s := t.Clock(); h == 0 && m == 0 && s == 0 && t.Nanosecond() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format("2006-01-02 15:04:05")
}

func timeCell(t time.Time) table.Cell {
	return table.Cell{Value: FormatTimestamp(t)}
}

func timePtrCell(t *time.Time) table.Cell {
	if t == nil {
		return table.Cell{Null: true}
	}
	return timeCell(*t)
}

// Table renders the constituent set with its narrowed schema.
func (cs Constituents) Table() *table.Table {
	t := table.New("constituents",
		[]string{"cons_id", "source", "create_dt", "modified_dt"},
		[]string{"int64", "string", "datetime", "datetime"})
	t.Rows = make([][]table.Cell, 0, len(cs))
	for _, c := range cs {
		t.Rows = append(t.Rows, []table.Cell{
			idCell(c.ID),
			textCell(c.Source),
			timeCell(c.Created),
			timeCell(c.Modified),
		})
	}
	return t
}

// Table renders the email set with its narrowed schema.
func (es PrimaryEmails) Table() *table.Table {
	t := table.New("primary_emails",
		[]string{"cons_email_id", "cons_id", "is_primary", "email", "create_dt", "modified_dt"},
		[]string{"int64", "int64", "bool", "string", "datetime", "datetime"})
	t.Rows = make([][]table.Cell, 0, len(es))
	for _, e := range es {
		t.Rows = append(t.Rows, []table.Cell{
			idCell(e.EmailID),
			idCell(e.ConsID),
			flagCell(e.IsPrimary),
			textCell(e.Email),
			timeCell(e.Created),
			timeCell(e.Modified),
		})
	}
	return t
}

// Table renders the subscription set with its narrowed schema.
func (cs ChapterSubscriptions) Table() *table.Table {
	t := table.New("chapter_subscriptions",
		[]string{"cons_email_id", "chapter_id", "isunsub", "unsub_dt", "modified_dt"},
		[]string{"int64", "int64", "bool", "datetime", "datetime"})
	t.Rows = make([][]table.Cell, 0, len(cs))
	for _, s := range cs {
		t.Rows = append(t.Rows, []table.Cell{
			idCell(s.EmailID),
			idPtrCell(s.ChapterID),
			flagPtrCell(s.Unsub),
			timePtrCell(s.UnsubAt),
			timePtrCell(s.Modified),
		})
	}
	return t
}

// Table renders the subscription-merge output with an explicit schema in
// place of collision suffixes.
func (es EmailSubscriptions) Table() *table.Table {
	t := table.New("email_subscriptions",
		[]string{"cons_email_id", "cons_id", "email", "email_create_dt", "email_modified_dt",
			"chapter_id", "isunsub", "unsub_dt", "sub_modified_dt", "sub_matched"},
		[]string{"int64", "int64", "string", "datetime", "datetime",
			"int64", "bool", "datetime", "datetime", "bool"})
	t.Rows = make([][]table.Cell, 0, len(es))
	for _, e := range es {
		t.Rows = append(t.Rows, []table.Cell{
			idCell(e.EmailID),
			idCell(e.ConsID),
			textCell(e.Email),
			timeCell(e.EmailCreated),
			timeCell(e.EmailModified),
			idCell(e.ChapterID),
			flagCell(e.Unsub),
			timePtrCell(e.UnsubAt),
			timePtrCell(e.SubModified),
			flagCell(e.SubMatched),
		})
	}
	return t
}

// Table renders the constituent-merge output with an explicit schema in
// place of collision suffixes.
func (ce ConstituentEmails) Table() *table.Table {
	t := table.New("constituent_emails",
		[]string{"cons_id", "cons_email_id", "email", "source", "chapter_id",
			"isunsub", "cons_create_dt", "cons_modified_dt", "cons_matched"},
		[]string{"int64", "int64", "string", "string", "int64",
			"bool", "datetime", "datetime", "bool"})
	t.Rows = make([][]table.Cell, 0, len(ce))
	for _, r := range ce {
		t.Rows = append(t.Rows, []table.Cell{
			idCell(r.ConsID),
			idCell(r.EmailID),
			textCell(r.Email),
			textCell(r.Source),
			idCell(r.ChapterID),
			flagCell(r.Unsub),
			timePtrCell(r.ConsCreated),
			timePtrCell(r.ConsModified),
			flagCell(r.ConsMatched),
		})
	}
	return t
}

// Table renders the person set with the exact people output schema.
func (p People) Table() *table.Table {
	t := table.New("people",
		[]string{"email", "code", "is_unsub", "created_dt", "updated_dt"},
		[]string{"string", "string", "bool", "datetime", "datetime"})
	t.Rows = make([][]table.Cell, 0, len(p))
	for _, person := range p {
		t.Rows = append(t.Rows, []table.Cell{
			textCell(person.Email),
			textCell(person.Code),
			flagCell(person.Unsub),
			timePtrCell(person.CreatedAt),
			timePtrCell(person.UpdatedAt),
		})
	}
	return t
}

// Table renders the acquisition facts with the exact output schema.
func (f AcquisitionFacts) Table() *table.Table {
	t := table.New("acquisition_facts",
		[]string{"acquisition_date", "acquisitions"},
		[]string{"string", "int64"})
	t.Rows = make([][]table.Cell, 0, len(f))
	for _, fact := range f {
		t.Rows = append(t.Rows, []table.Cell{
			{Value: fact.Date},
			idCell(int64(fact.Count)),
		})
	}
	return t
}
