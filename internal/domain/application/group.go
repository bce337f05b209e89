package application

// Group holds the applications of one job, in list order.
type Group struct {
	JobID    int64
	JobTitle string
	Items    []Application
}

// GroupByJob groups applications by job id. Groups keep the order in which
// each job first appears.
func GroupByJob(apps []Application) []Group {
	idx := map[int64]int{}
	var out []Group
	for _, a := range apps {
		i, ok := idx[a.Job]
		if !ok {
			i = len(out)
			idx[a.Job] = i
			out = append(out, Group{JobID: a.Job, JobTitle: a.JobTitle})
		}
		out[i].Items = append(out[i].Items, a)
	}
	return out
}

// JobTitles returns the distinct non-empty job titles in first-seen order.
func JobTitles(apps []Application) []string {
	seen := map[string]bool{}
	var out []string
	for _, a := range apps {
		if a.JobTitle == "" || seen[a.JobTitle] {
			continue
		}
		seen[a.JobTitle] = true
		out = append(out, a.JobTitle)
	}
	return out
}

// FilterByTitle keeps groups whose title matches. An empty title keeps all.
func FilterByTitle(groups []Group, title string) []Group {
	if title == "" {
		return groups
	}
	var out []Group
	for _, g := range groups {
		if g.JobTitle == title {
			out = append(out, g)
		}
	}
	return out
}

// WithStatus returns a copy of apps where the application id has its status
// replaced. The second result reports whether the id was found.
func WithStatus(apps []Application, id int64, status Status) ([]Application, bool) {
	out := make([]Application, len(apps))
	copy(out, apps)
	found := false
	for i := range out {
		if out[i].ID == id {
			out[i].Status = status
			found = true
		}
	}
	return out, found
}
