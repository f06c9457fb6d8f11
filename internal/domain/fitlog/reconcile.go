package fitlog

// Reconcile merges independently loaded local and remote record sets into a
// single authoritative list. This is source selection, not a field-level
// merge: the remote set wins wholesale when it has any records, otherwise
// the local set is used. An empty base yields one fresh empty record so the
// user always has a log to edit.
//
// The chosen base is de-duplicated by id, keeping the record with the later
// date (last seen wins a tie), and every record is guaranteed a unique id.
// The returned flag reports whether any id was assigned or corrected; the
// caller should write the corrected list through to the local cache but must
// not push to the remote store on the load path.
func Reconcile(local, remote []Record) ([]Record, bool) {
	base := local
	if len(remote) > 0 {
		base = remote
	}

	byID := make(map[string]int, len(base))
	deduped := make([]Record, 0, len(base))
	for _, rec := range base {
		if i, ok := byID[rec.ID]; ok && rec.ID != "" {
			if !rec.Date.Before(deduped[i].Date) {
				deduped[i] = rec
			}
			continue
		}
		byID[rec.ID] = len(deduped)
		deduped = append(deduped, rec)
	}

	// Synthesized defaults carry a fresh id already, so they do not count
	// as an id correction and trigger no write-through.
	if len(deduped) == 0 {
		return []Record{NewRecord()}, false
	}

	return EnsureUniqueIDs(deduped)
}
