package linkedin

import (
	"strings"
	"testing"

	perr "linkpulse/internal/platform/errors"
)

func TestReadShares(t *testing.T) {
	t.Parallel()

	csv := strings.Join([]string{
		"Date,ShareLink,ShareCommentary,SharedUrl,MediaUrl,Visibility",
		`2025-01-02 09:15:00,https://l.in/a,Excited to ship #data,,https://media.example/img.png,PUBLIC`,
		`2025-01-03 10:00:00,https://l.in/b,Weekend reading,https://blog.example/post,,PUBLIC`,
		`2025-01-04 11:00:00,https://l.in/c,Plain thoughts,,,PUBLIC`,
	}, "\n")

	shares, err := ReadShares(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ReadShares: %v", err)
	}
	if len(shares) != 3 {
		t.Fatalf("shares = %d, want 3", len(shares))
	}

	if shares[0].Timestamp != "2025-01-02 09:15:00" {
		t.Errorf("timestamp = %q", shares[0].Timestamp)
	}
	if shares[0].Text != "Excited to ship #data" {
		t.Errorf("text = %q", shares[0].Text)
	}
	if !shares[0].HasMediaURL || shares[0].HasSharedURL {
		t.Errorf("share 0 flags = shared=%v media=%v, want media only", shares[0].HasSharedURL, shares[0].HasMediaURL)
	}
	if !shares[1].HasSharedURL || shares[1].HasMediaURL {
		t.Errorf("share 1 flags = shared=%v media=%v, want link only", shares[1].HasSharedURL, shares[1].HasMediaURL)
	}
	if shares[2].HasSharedURL || shares[2].HasMediaURL {
		t.Errorf("share 2 should be text only")
	}
}

func TestReadShares_RepairsQuoting(t *testing.T) {
	t.Parallel()

	// the exporter leaves doubled quotes in unquoted fields, LazyQuotes
	// passes them through for the cleaner to repair
	csv := "Date,ShareCommentary,SharedUrl,MediaUrl\n" +
		"2025-01-02 09:15:00,So called \"\"thought leadership\"\",\"\",\n"

	shares, err := ReadShares(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ReadShares: %v", err)
	}
	if len(shares) != 1 {
		t.Fatalf("shares = %d, want 1", len(shares))
	}
	if shares[0].Text != `So called "thought leadership"` {
		t.Fatalf("text = %q", shares[0].Text)
	}
	if shares[0].HasSharedURL {
		t.Fatalf("quoted-empty SharedUrl should read as absent")
	}
}

func TestReadShares_ShortRowsTolerated(t *testing.T) {
	t.Parallel()

	csv := "Date,ShareCommentary,SharedUrl,MediaUrl\n" +
		"2025-01-02 09:15:00,hello\n"

	shares, err := ReadShares(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ReadShares: %v", err)
	}
	if len(shares) != 1 || shares[0].Text != "hello" {
		t.Fatalf("shares = %+v", shares)
	}
	if shares[0].HasSharedURL || shares[0].HasMediaURL {
		t.Fatalf("missing columns should read as absent urls")
	}
}

func TestReadShares_MissingColumns(t *testing.T) {
	t.Parallel()

	csv := "Date,Something\n2025-01-02,whatever\n"
	_, err := ReadShares(strings.NewReader(csv))
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("err = %v, want invalid argument", err)
	}
	if err == nil || !strings.Contains(err.Error(), "ShareCommentary") {
		t.Fatalf("error should name the missing column: %v", err)
	}
}

func TestReadShares_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := ReadShares(strings.NewReader(""))
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("err = %v, want invalid argument", err)
	}
}

func TestReadComments(t *testing.T) {
	t.Parallel()

	csv := "Date,Link,Message\n" +
		`2025-01-02 09:45:00,https://l.in/c1,Totally agree` + "\n" +
		"2025-02-10 06:00:00,https://l.in/c2,\"Great \\\"\\\"insight\\\"\\\"\"\n"

	comments, err := ReadComments(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ReadComments: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("comments = %d, want 2", len(comments))
	}
	if comments[0].Text != "Totally agree" {
		t.Errorf("text = %q", comments[0].Text)
	}
	if comments[1].Timestamp != "2025-02-10 06:00:00" {
		t.Errorf("timestamp = %q", comments[1].Timestamp)
	}
}

func TestReadComments_MissingMessage(t *testing.T) {
	t.Parallel()

	csv := "Date\n2025-01-02\n"
	_, err := ReadComments(strings.NewReader(csv))
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("err = %v, want invalid argument", err)
	}
}
