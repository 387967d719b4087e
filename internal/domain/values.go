package domain

import (
	"math"
	"net/url"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	titleMinLength = 5
	titleMaxLength = 100

	descriptionMinLength = 20
	descriptionMaxLength = 2000
	descriptionMinWords  = 5
	descriptionMaxWords  = 500

	motivationMinLength = 10
	motivationMaxLength = 1000
	motivationMinWords  = 5
	motivationMaxWords  = 200

	coverImageMaxLength = 255

	durationMinWeeks = 1
	durationMaxWeeks = 104

	teamSizeMin = 1
	teamSizeMax = 20
)

var (
	titlePattern = regexp.MustCompile(`^[a-zA-Z0-9\s\-_.ñáéíóúüÁÉÍÓÚÜÑ]+$`)

	repositoryPatterns = map[string]*regexp.Regexp{
		"GitHub":    regexp.MustCompile(`^(https?://)?(www\.)?github\.com/[a-z0-9-]+/[a-z0-9_.-]+/?$`),
		"GitLab":    regexp.MustCompile(`^(https?://)?(www\.)?gitlab\.com/[a-z0-9-]+/[a-z0-9_.-]+/?$`),
		"Bitbucket": regexp.MustCompile(`^(https?://)?(www\.)?bitbucket\.org/[a-z0-9-]+/[a-z0-9_.-]+/?$`),
	}

	imagePattern = regexp.MustCompile(`^(https?://).*\.(jpg|jpeg|png|gif|webp|svg)(\?.*)?$`)

	// whole words and phrases rejected in free text
	blockedWords   = []string{"spam", "test", "prueba"}
	blockedPhrases = []string{"lorem ipsum"}

	trustedImageHosts = []string{
		"githubusercontent.com",
		"imgur.com",
		"cloudinary.com",
		"amazonaws.com",
		"googleusercontent.com",
	}
)

// Title is a validated project title.
type Title struct{ value string }

func NewTitle(raw string) (Title, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return Title{}, invalid("title must not be empty")
	}
	n := utf8.RuneCountInString(v)
	if n < titleMinLength || n > titleMaxLength {
		return Title{}, invalid("title must be between %d and %d characters", titleMinLength, titleMaxLength)
	}
	if !titlePattern.MatchString(v) {
		return Title{}, invalid("title contains characters that are not allowed")
	}
	lower := strings.ToLower(v)
	if slices.Contains(blockedWords, lower) || slices.Contains(blockedPhrases, lower) {
		return Title{}, invalid("title is not allowed")
	}
	return Title{value: v}, nil
}

func (t Title) String() string { return t.value }

// Description is a validated project description.
type Description struct{ value string }

func NewDescription(raw string) (Description, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return Description{}, invalid("description must not be empty")
	}
	n := utf8.RuneCountInString(v)
	if n < descriptionMinLength || n > descriptionMaxLength {
		return Description{}, invalid("description must be between %d and %d characters", descriptionMinLength, descriptionMaxLength)
	}
	words := wordCount(v)
	if words < descriptionMinWords || words > descriptionMaxWords {
		return Description{}, invalid("description must have between %d and %d words", descriptionMinWords, descriptionMaxWords)
	}
	if !strings.ContainsFunc(v, func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }) {
		return Description{}, invalid("description must not consist only of symbols")
	}
	if containsBlocked(v) {
		return Description{}, invalid("description contains content that is not allowed")
	}
	return Description{value: v}, nil
}

func (d Description) String() string { return d.value }

func (d Description) Summary(maxLength int) string { return summarize(d.value, maxLength) }

// MotivationMessage is the applicant's pitch attached to an application.
type MotivationMessage struct{ value string }

func NewMotivationMessage(raw string) (MotivationMessage, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return MotivationMessage{}, invalid("motivation message must not be empty")
	}
	n := utf8.RuneCountInString(v)
	if n < motivationMinLength || n > motivationMaxLength {
		return MotivationMessage{}, invalid("motivation message must be between %d and %d characters", motivationMinLength, motivationMaxLength)
	}
	words := wordCount(v)
	if words < motivationMinWords || words > motivationMaxWords {
		return MotivationMessage{}, invalid("motivation message must have between %d and %d words", motivationMinWords, motivationMaxWords)
	}
	if containsBlocked(v) {
		return MotivationMessage{}, invalid("motivation message contains content that is not allowed")
	}
	return MotivationMessage{value: v}, nil
}

func (m MotivationMessage) String() string { return m.value }

func (m MotivationMessage) Summary(maxLength int) string { return summarize(m.value, maxLength) }

// RepositoryURL points at a GitHub, GitLab or Bitbucket repository.
type RepositoryURL struct {
	normalized string
	provider   string
}

func NewRepositoryURL(raw string) (RepositoryURL, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return RepositoryURL{}, invalid("repository url must not be empty")
	}
	if _, err := url.Parse(v); err != nil {
		return RepositoryURL{}, invalid("repository url is malformed")
	}
	lower := strings.ToLower(v)
	provider := ""
	for name, re := range repositoryPatterns {
		if re.MatchString(lower) {
			provider = name
			break
		}
	}
	if provider == "" {
		return RepositoryURL{}, invalid("only GitHub, GitLab and Bitbucket repositories are supported")
	}

	// the patterns only admit http(s), so the scheme is one of the two
	scheme, rest := "https://", v
	if i := strings.Index(lower, "://"); i >= 0 {
		scheme, rest = lower[:i+3], v[i+3:]
	}
	if strings.HasPrefix(strings.ToLower(rest), "www.") {
		rest = rest[len("www."):]
	}
	normalized := scheme + strings.TrimSuffix(rest, "/")

	return RepositoryURL{normalized: normalized, provider: provider}, nil
}

func (r RepositoryURL) String() string   { return r.normalized }
func (r RepositoryURL) Provider() string { return r.provider }

// Owner returns the account segment, e.g. "acme" for github.com/acme/tool.
func (r RepositoryURL) Owner() string {
	parts := strings.Split(r.normalized, "/")
	if len(parts) >= 4 {
		return parts[3]
	}
	return ""
}

func (r RepositoryURL) Name() string {
	parts := strings.Split(r.normalized, "/")
	if len(parts) >= 5 {
		return parts[4]
	}
	return ""
}

// APIURL is empty for providers without a public REST endpoint mapping.
func (r RepositoryURL) APIURL() string {
	switch r.provider {
	case "GitHub":
		return "https://api.github.com/repos/" + r.Owner() + "/" + r.Name()
	case "GitLab":
		return "https://gitlab.com/api/v4/projects/" + r.Owner() + "%2F" + r.Name()
	}
	return ""
}

// CoverImageURL is an HTTPS link to a raster or SVG image.
type CoverImageURL struct {
	normalized string
}

func NewCoverImageURL(raw string) (CoverImageURL, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return CoverImageURL{}, invalid("cover image url must not be empty")
	}
	if utf8.RuneCountInString(v) > coverImageMaxLength {
		return CoverImageURL{}, invalid("cover image url must not exceed %d characters", coverImageMaxLength)
	}
	if _, err := url.Parse(v); err != nil {
		return CoverImageURL{}, invalid("cover image url is malformed")
	}
	lower := strings.ToLower(v)
	if !imagePattern.MatchString(lower) {
		return CoverImageURL{}, invalid("cover image url must point to a jpg, jpeg, png, gif, webp or svg image")
	}
	if !strings.HasPrefix(lower, "https://") {
		return CoverImageURL{}, invalid("cover image url must use https")
	}
	rest := v[len("https://"):]
	if strings.HasPrefix(strings.ToLower(rest), "www.") {
		rest = rest[len("www."):]
	}
	return CoverImageURL{normalized: "https://" + rest}, nil
}

func (c CoverImageURL) String() string { return c.normalized }

func (c CoverImageURL) Format() string {
	p := strings.ToLower(c.normalized)
	if i := strings.IndexByte(p, '?'); i >= 0 {
		p = p[:i]
	}
	switch {
	case strings.HasSuffix(p, ".jpg"), strings.HasSuffix(p, ".jpeg"):
		return "JPEG"
	case strings.HasSuffix(p, ".png"):
		return "PNG"
	case strings.HasSuffix(p, ".gif"):
		return "GIF"
	case strings.HasSuffix(p, ".webp"):
		return "WEBP"
	case strings.HasSuffix(p, ".svg"):
		return "SVG"
	}
	return "UNKNOWN"
}

func (c CoverImageURL) Host() string {
	u, err := url.Parse(c.normalized)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

func (c CoverImageURL) IsFromTrustedHost() bool {
	host := strings.ToLower(c.Host())
	if host == "" {
		return false
	}
	for _, h := range trustedImageHosts {
		if strings.Contains(host, h) {
			return true
		}
	}
	return false
}

// Duration is the estimated project length in weeks.
type Duration struct{ weeks int }

func NewDuration(weeks int) (Duration, error) {
	if weeks < durationMinWeeks || weeks > durationMaxWeeks {
		return Duration{}, invalid("estimated duration must be between %d and %d weeks", durationMinWeeks, durationMaxWeeks)
	}
	return Duration{weeks: weeks}, nil
}

func (d Duration) Weeks() int  { return d.weeks }
func (d Duration) Months() int { return int(math.Ceil(float64(d.weeks) / 4.33)) }

func (d Duration) Category() string {
	switch {
	case d.weeks <= 4:
		return "SHORT"
	case d.weeks <= 12:
		return "MEDIUM"
	default:
		return "LONG"
	}
}

// TeamSize is the maximum number of active members a project admits.
type TeamSize struct{ value int }

func NewTeamSize(size int) (TeamSize, error) {
	if size < teamSizeMin || size > teamSizeMax {
		return TeamSize{}, invalid("team size must be between %d and %d", teamSizeMin, teamSizeMax)
	}
	return TeamSize{value: size}, nil
}

func (t TeamSize) Value() int                    { return t.value }
func (t TeamSize) IsFull(currentMembers int) bool { return currentMembers >= t.value }

func (t TeamSize) Category() string {
	switch {
	case t.value <= 3:
		return "SMALL"
	case t.value <= 6:
		return "MEDIUM"
	default:
		return "LARGE"
	}
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

func containsBlocked(s string) bool {
	lower := strings.ToLower(s)
	for _, p := range blockedPhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	tokens := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, tok := range tokens {
		for _, w := range blockedWords {
			if tok == w {
				return true
			}
		}
	}
	return false
}

func summarize(s string, maxLength int) string {
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}
	return string(runes[:maxLength]) + "..."
}
