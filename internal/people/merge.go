package people

// MergeSubscriptions left-joins chapter subscription state into the
// email rows on the email id. Every email row is kept. Emails with no
// subscription row get the default-subscribed fill: the target chapter
// and unsubscribed=false, on the assumption that a constituent absent
// from the subscription export never opted out. Matched rows with a
// missing chapter or flag get the same fill values. Duplicate
// subscription rows for one email id expand into one output row each,
// in input order.
func MergeSubscriptions(emails PrimaryEmails, subs ChapterSubscriptions, chapterID int64) EmailSubscriptions {
	byEmailID := make(map[int64][]ChapterSubscription, len(subs))
	for _, s := range subs {
		byEmailID[s.EmailID] = append(byEmailID[s.EmailID], s)
	}

	out := make(EmailSubscriptions, 0, len(emails))
	for _, e := range emails {
		base := EmailSubscription{
			EmailID:       e.EmailID,
			ConsID:        e.ConsID,
			Email:         e.Email,
			EmailCreated:  e.Created,
			EmailModified: e.Modified,
			ChapterID:     chapterID,
		}

		matches := byEmailID[e.EmailID]
		if len(matches) == 0 {
			out = append(out, base)
			continue
		}
		for _, s := range matches {
			es := base
			es.SubMatched = true
			es.UnsubAt = s.UnsubAt
			es.SubModified = s.Modified
			if s.ChapterID != nil {
				es.ChapterID = *s.ChapterID
			}
			if s.Unsub != nil {
				es.Unsub = *s.Unsub
			}
			out = append(out, es)
		}
	}
	return out
}

// MergeConstituents right-joins constituent rows into the email
// subscription set on the constituent id: every email subscription row
// is kept whether or not a constituent matches it, and rows with no
// match carry nil timestamps and an empty source. Duplicate constituent
// ids expand as on the first merge.
func MergeConstituents(cons Constituents, subs EmailSubscriptions) ConstituentEmails {
	byID := make(map[int64][]Constituent, len(cons))
	for _, c := range cons {
		byID[c.ID] = append(byID[c.ID], c)
	}

	out := make(ConstituentEmails, 0, len(subs))
	for _, es := range subs {
		base := ConstituentEmail{
			ConsID:    es.ConsID,
			EmailID:   es.EmailID,
			Email:     es.Email,
			ChapterID: es.ChapterID,
			Unsub:     es.Unsub,
		}

		matches := byID[es.ConsID]
		if len(matches) == 0 {
			out = append(out, base)
			continue
		}
		for _, c := range matches {
			ce := base
			ce.ConsMatched = true
			ce.Source = c.Source
			created, modified := c.Created, c.Modified
			ce.ConsCreated = &created
			ce.ConsModified = &modified
			out = append(out, ce)
		}
	}
	return out
}
