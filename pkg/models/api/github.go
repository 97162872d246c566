package api

// Wire shapes for the GitHub GraphQL v4 API, limited to the fields the
// service reads.

type GraphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type GraphQLError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type GraphQLResponse struct {
	Data   GraphQLData    `json:"data"`
	Errors []GraphQLError `json:"errors"`
}

type GraphQLData struct {
	User *User `json:"user"`
}

type User struct {
	ContributionsCollection *ContributionsCollection `json:"contributionsCollection"`
	Gists                   *GistConnection          `json:"gists"`
}

type ContributionsCollection struct {
	ContributionCalendar ContributionCalendar `json:"contributionCalendar"`
}

type ContributionCalendar struct {
	TotalContributions int                `json:"totalContributions"`
	Weeks              []ContributionWeek `json:"weeks"`
}

type ContributionWeek struct {
	ContributionDays []ContributionDay `json:"contributionDays"`
}

type ContributionDay struct {
	Date              string `json:"date"`
	Weekday           int    `json:"weekday"`
	ContributionCount int    `json:"contributionCount"`
}

type GistConnection struct {
	Nodes []Gist `json:"nodes"`
}

type Gist struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Files       []GistFile `json:"files"`
}

type GistFile struct {
	Name string `json:"name"`
}
