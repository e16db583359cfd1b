// Package nowplaying renders the now playing panel: item metadata compiled
// from a user format string, the cover image and the progress bar.
package nowplaying

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/nowplaying/internal/playback"
	"github.com/llehouerou/nowplaying/internal/ui/render"
)

// TokenKind identifies the kind of a format token.
type TokenKind int

const (
	TokenLiteral TokenKind = iota
	TokenNewline
	TokenStatus
	TokenLiked
	TokenTrack
	TokenArtists
	TokenAlbum
	TokenMetadata
	TokenUnknown
)

// Token is one piece of a tokenized format string. Text is the literal
// text, or the placeholder as written for placeholder kinds.
type Token struct {
	Kind TokenKind
	Text string
}

var tokenPattern = regexp.MustCompile(`\{.*?\}|\n`)

var placeholders = map[string]TokenKind{
	"{status}":   TokenStatus,
	"{liked}":    TokenLiked,
	"{track}":    TokenTrack,
	"{artists}":  TokenArtists,
	"{album}":    TokenAlbum,
	"{metadata}": TokenMetadata,
}

// Tokenize splits format into literals, newlines and placeholders. Any
// brace-delimited name that is not a known placeholder is TokenUnknown.
func Tokenize(format string) []Token {
	var tokens []Token
	ptr := 0
	for _, m := range tokenPattern.FindAllStringIndex(format, -1) {
		if ptr < m[0] {
			tokens = append(tokens, Token{Kind: TokenLiteral, Text: format[ptr:m[0]]})
		}
		ptr = m[1]

		text := format[m[0]:m[1]]
		switch kind, ok := placeholders[text]; {
		case text == "\n":
			tokens = append(tokens, Token{Kind: TokenNewline, Text: text})
		case ok:
			tokens = append(tokens, Token{Kind: kind, Text: text})
		default:
			tokens = append(tokens, Token{Kind: TokenUnknown, Text: text})
		}
	}
	if ptr < len(format) {
		tokens = append(tokens, Token{Kind: TokenLiteral, Text: format[ptr:]})
	}
	return tokens
}

// Metadata field names accepted in FormatOptions.MetadataFields.
const (
	FieldRepeat  = "repeat"
	FieldShuffle = "shuffle"
	FieldVolume  = "volume"
	FieldDevice  = "device"
)

// FormatStyles are the span styles used for each placeholder.
type FormatStyles struct {
	Status   lipgloss.Style
	Liked    lipgloss.Style
	Track    lipgloss.Style
	Artists  lipgloss.Style
	Album    lipgloss.Style
	Metadata lipgloss.Style
}

// FormatOptions holds what the format compiler needs besides the playback.
type FormatOptions struct {
	PlayIcon       string
	PauseIcon      string
	LikedIcon      string
	MetadataFields []string
	Styles         FormatStyles
}

// Compile turns format into styled text for snap. liked reports whether the
// playing item is a liked track. Placeholders that resolve to nothing are
// skipped without leaving an empty span behind.
func Compile(format string, snap *playback.Snapshot, liked bool, opts FormatOptions) render.Text {
	var (
		text  render.Text
		spans []render.Span
	)

	for _, tok := range Tokenize(format) {
		switch tok.Kind {
		case TokenLiteral:
			spans = append(spans, render.Raw(tok.Text))
		case TokenNewline:
			text.Lines = append(text.Lines, render.Line{Spans: spans})
			spans = nil
		default:
			if span, ok := resolve(tok.Kind, snap, liked, opts); ok {
				spans = append(spans, span)
			}
		}
	}
	if len(spans) > 0 {
		text.Lines = append(text.Lines, render.Line{Spans: spans})
	}
	return text
}

func resolve(kind TokenKind, snap *playback.Snapshot, liked bool, opts FormatOptions) (render.Span, bool) {
	if snap == nil {
		return render.Span{}, false
	}
	st := opts.Styles

	switch kind {
	case TokenStatus:
		icon := opts.PauseIcon
		if snap.IsPlaying {
			icon = opts.PlayIcon
		}
		return render.Styled(icon, st.Status), true

	case TokenLiked:
		if !liked {
			return render.Span{}, false
		}
		if _, isTrack := snap.Item.(*playback.Track); !isTrack {
			return render.Span{}, false
		}
		return render.Styled(opts.LikedIcon, st.Liked), true

	case TokenTrack:
		if snap.Item == nil {
			return render.Span{}, false
		}
		name := displayName(snap.Item.DisplayName())
		if snap.Item.IsExplicit() {
			name += " (E)"
		}
		return render.Styled(name, st.Track), true

	case TokenArtists:
		switch item := snap.Item.(type) {
		case *playback.Track:
			return render.Styled(displayName(strings.Join(item.ArtistNames(), ", ")), st.Artists), true
		case *playback.Episode:
			return render.Styled(displayName(item.Show.Publisher), st.Artists), true
		}

	case TokenAlbum:
		switch item := snap.Item.(type) {
		case *playback.Track:
			return render.Styled(displayName(item.Album.Name), st.Album), true
		case *playback.Episode:
			return render.Styled(displayName(item.Show.Name), st.Album), true
		}

	case TokenMetadata:
		return render.Styled(Metadata(snap, opts.MetadataFields), st.Metadata), true
	}

	return render.Span{}, false
}

// Metadata joins the requested playback fields with " | ", in the order
// given. Unknown field names are ignored.
func Metadata(snap *playback.Snapshot, fields []string) string {
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		switch field {
		case FieldRepeat:
			parts = append(parts, "repeat: "+repeatValue(snap))
		case FieldShuffle:
			parts = append(parts, fmt.Sprintf("shuffle: %t", snap.Shuffle))
		case FieldVolume:
			parts = append(parts, "volume: "+volumeValue(snap))
		case FieldDevice:
			parts = append(parts, "device: "+snap.Device)
		}
	}
	return strings.Join(parts, " | ")
}

func repeatValue(snap *playback.Snapshot) string {
	if snap.FakeTrackRepeat {
		return "track (fake)"
	}
	return snap.Repeat.String()
}

func volumeValue(snap *playback.Snapshot) string {
	if snap.Muted() {
		return fmt.Sprintf("%d%% (muted)", *snap.MutedVolume)
	}
	return fmt.Sprintf("%d%%", snap.EffectiveVolume())
}

// displayName prepares a name coming from the playback service for display.
func displayName(s string) string {
	return render.Bidi(render.Sanitize(s))
}
