package formatter

import (
	"fmt"
	"strings"

	"github.com/lmoretti/respite/internal/domain"
)

// FormatMusicTherapy formats a stress-matched track list.
func FormatMusicTherapy(therapy *domain.MusicTherapy) string {
	var b strings.Builder

	if therapy.TherapeuticGoal != "" {
		b.WriteString(Bold(therapy.TherapeuticGoal) + "\n")
	}
	if therapy.TherapeuticExplanation != "" {
		b.WriteString(Dim(therapy.TherapeuticExplanation) + "\n")
	}
	if therapy.StressLevel != "" {
		b.WriteString(fmt.Sprintf("%s\n", StressIndicator(therapy.StressLevel)))
	}
	b.WriteString("\n")

	if len(therapy.Tracks) == 0 {
		b.WriteString(Dim("No tracks available.") + "\n")
		return RenderBox("Music Therapy", b.String())
	}

	for i, track := range therapy.Tracks {
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			StyleBlue.Render(fmt.Sprintf("%2d.", i+1)),
			Bold(track.Name),
			Dim("by "+track.Artist)))
		if track.AIReason != "" {
			b.WriteString("      " + Dim(track.AIReason) + "\n")
		}
		if track.URL != "" {
			b.WriteString("      " + StyleDim.Render(track.URL) + "\n")
		}
	}

	return RenderBox("Music Therapy", b.String())
}

// FormatMusicAuthStatus formats the Spotify connection state.
func FormatMusicAuthStatus(status *domain.MusicAuthStatus) string {
	if !status.Authenticated {
		return StyleYellow.Render("Spotify is not connected.") + " " +
			Dim("Run `respite music login` to connect.")
	}
	if status.User != nil {
		return StyleGreen.Render("✓ Spotify connected") + " " +
			Dim(fmt.Sprintf("as %s (%s)", status.User.Name, status.User.Email))
	}
	return StyleGreen.Render("✓ Spotify connected")
}

// FormatPlaylist formats a freshly created playlist.
func FormatPlaylist(result *domain.PlaylistResult) string {
	var b strings.Builder
	b.WriteString(StyleGreen.Render("✓ Playlist created") + "\n\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Name  "), Bold(result.Playlist.Name)))
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Tracks"), StyleFg.Render(fmt.Sprintf("%d", result.Playlist.Tracks))))
	if result.Playlist.URL != "" {
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Link  "), StyleBlue.Render(result.Playlist.URL)))
	}
	return b.String()
}

// FormatVideoTherapy formats stress-matched therapeutic videos.
func FormatVideoTherapy(therapy *domain.VideoTherapy) string {
	var b strings.Builder

	assess := therapy.StressAssessment
	b.WriteString(fmt.Sprintf("Stress %s  %s\n",
		StressStyle(assess.Level).Bold(true).Render(fmt.Sprintf("%d/10", assess.Score)),
		StressIndicator(assess.Level)))

	if intel := therapy.VideoIntelligence; intel != nil {
		if intel.TherapeuticGoal != "" {
			b.WriteString(Dim(intel.TherapeuticGoal) + "\n")
		}
		if intel.TherapeuticExplanation != "" {
			b.WriteString(Dim(intel.TherapeuticExplanation) + "\n")
		}
	}
	b.WriteString("\n")

	if len(therapy.TherapeuticVideos) == 0 {
		b.WriteString(Dim("No videos available.") + "\n")
		return RenderBox("Video Therapy", b.String())
	}

	for i, video := range therapy.TherapeuticVideos {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			StyleBlue.Render(fmt.Sprintf("%2d.", i+1)),
			Bold(video.Title)))
		b.WriteString("      " + Dim(video.Channel) + "\n")
		for _, line := range wrapText(video.Description, 64) {
			b.WriteString("      " + Dim(line) + "\n")
		}
		if video.URL != "" {
			b.WriteString("      " + StyleDim.Render(video.URL) + "\n")
		}
	}

	return RenderBox("Video Therapy", b.String())
}

// wrapText is a light word wrapper for long descriptions.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}
