package email_scrape

import (
	"bytes"
	"encoding/base64"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
)

var reURL = regexp.MustCompile(`https?://[^\s<>"']+`)

// SubjectMatches reports whether subj contains any of the configured
// fragments, case-insensitively. An empty filter matches everything.
func SubjectMatches(subj string, any []string) bool {
	if len(any) == 0 {
		return true
	}
	ls := strings.ToLower(subj)
	for _, frag := range any {
		frag = strings.ToLower(strings.TrimSpace(frag))
		if frag != "" && strings.Contains(ls, frag) {
			return true
		}
	}
	return false
}

// JobLinks extracts board job-page URLs from a raw RFC822 message. Only
// links under baseURL's host with a /remote-jobs/ path survive; query
// strings and fragments (tracking) are stripped, duplicates keep their
// first occurrence.
func JobLinks(raw []byte, baseURL string) []string {
	body := messageBody(raw)
	if body == "" {
		return nil
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil
	}

	seen := map[string]bool{}
	var out []string
	for _, m := range reURL.FindAllString(body, -1) {
		m = strings.TrimRight(m, ".,);:]\"'")
		u, err := url.Parse(m)
		if err != nil {
			continue
		}
		if !strings.EqualFold(u.Host, base.Host) {
			continue
		}
		if !strings.HasPrefix(u.Path, "/remote-jobs/") || u.Path == "/remote-jobs/" {
			continue
		}
		clean := base.Scheme + "://" + base.Host + u.Path
		if seen[clean] {
			continue
		}
		seen[clean] = true
		out = append(out, clean)
	}
	return out
}

// messageBody returns the decoded text of the message, preferring HTML
// parts. Parse failures fall back to treating the raw bytes as plain text.
func messageBody(raw []byte) string {
	msg, err := mail.ReadMessage(bytes.NewReader(raw))
	if err != nil {
		return string(raw)
	}

	ct := msg.Header.Get("Content-Type")
	cte := msg.Header.Get("Content-Transfer-Encoding")
	mediaType, params, err := mime.ParseMediaType(ct)
	if err != nil {
		mediaType = "text/plain"
	}

	if strings.HasPrefix(mediaType, "multipart/") {
		if b := multipartBody(msg.Body, params["boundary"]); b != "" {
			return b
		}
		return ""
	}

	b, _ := io.ReadAll(decodeTransfer(msg.Body, cte))
	return string(b)
}

func multipartBody(r io.Reader, boundary string) string {
	if boundary == "" {
		return ""
	}
	mr := multipart.NewReader(r, boundary)

	var plain, html string
	for {
		part, err := mr.NextPart()
		if err != nil {
			break
		}
		mediaType, params, _ := mime.ParseMediaType(part.Header.Get("Content-Type"))
		cte := part.Header.Get("Content-Transfer-Encoding")

		switch {
		case strings.HasPrefix(mediaType, "multipart/"):
			if b := multipartBody(part, params["boundary"]); html == "" && b != "" {
				html = b
			}
		case mediaType == "text/html":
			b, _ := io.ReadAll(decodeTransfer(part, cte))
			if html == "" {
				html = string(b)
			}
		case mediaType == "text/plain":
			b, _ := io.ReadAll(decodeTransfer(part, cte))
			if plain == "" {
				plain = string(b)
			}
		}
	}

	if html != "" {
		return html
	}
	return plain
}

func decodeTransfer(r io.Reader, encoding string) io.Reader {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "quoted-printable":
		return quotedprintable.NewReader(r)
	case "base64":
		return base64.NewDecoder(base64.StdEncoding, r)
	default:
		return r
	}
}
