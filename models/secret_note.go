package models

import (
	"strings"
	"time"
)

const (
	noteDateLayout = "2006-01-02"
	noteTimeLayout = "15:04:05"

	notePrefixDate    = "Date: "
	notePrefixTime    = "Time: "
	notePrefixMessage = "Message: "
	noteSeparator     = " | "
)

// NoteStampOverhead is how many bytes the date and time header adds in front
// of a stamped message.
const NoteStampOverhead = len(notePrefixDate) + len(noteDateLayout) + len(noteSeparator) +
	len(notePrefixTime) + len(noteTimeLayout) + len(noteSeparator) + len(notePrefixMessage)

// SecretNote is the plaintext sealed into an image: the user's message,
// optionally stamped with the moment the photo was taken.
type SecretNote struct {
	TakenAt time.Time
	Message string
}

// Encode renders the note as
//
//	Date: 2025-07-14 | Time: 10:30:00 | Message: hello
//
// or as the bare message when TakenAt is zero.
func (n SecretNote) Encode() string {
	if n.TakenAt.IsZero() {
		return n.Message
	}

	var b strings.Builder
	b.WriteString(notePrefixDate)
	b.WriteString(n.TakenAt.Format(noteDateLayout))
	b.WriteString(noteSeparator)
	b.WriteString(notePrefixTime)
	b.WriteString(n.TakenAt.Format(noteTimeLayout))
	b.WriteString(noteSeparator)
	b.WriteString(notePrefixMessage)
	b.WriteString(n.Message)
	return b.String()
}

// ParseSecretNote reverses [SecretNote.Encode]. Text that does not carry the
// date and time header is returned as a bare message. The message part may
// itself contain the separator.
func ParseSecretNote(text string) SecretNote {
	parts := strings.SplitN(text, noteSeparator, 3)
	if len(parts) != 3 ||
		!strings.HasPrefix(parts[0], notePrefixDate) ||
		!strings.HasPrefix(parts[1], notePrefixTime) ||
		!strings.HasPrefix(parts[2], notePrefixMessage) {
		return SecretNote{Message: text}
	}

	stamp := strings.TrimPrefix(parts[0], notePrefixDate) + " " + strings.TrimPrefix(parts[1], notePrefixTime)
	takenAt, err := time.ParseInLocation(noteDateLayout+" "+noteTimeLayout, stamp, time.Local)
	if err != nil {
		return SecretNote{Message: text}
	}

	return SecretNote{
		TakenAt: takenAt,
		Message: strings.TrimPrefix(parts[2], notePrefixMessage),
	}
}
