package summarizer

import (
	"fmt"

	"github.com/nguyentantai21042004/recap/internal/document"
)

const systemPrompt = `You are a helpful assistant that creates summaries of videos from their transcripts. Write every title and summary in %s. Reply with JSON only.`

const segmentPrompt = `Divide the video transcript below into sections so a viewer can navigate it, and summarize each section.

Rules:
- Each section covers a contiguous time range. start_time and end_time must be copied exactly from timestamps that appear in the transcript, formatted HH:MM:SS.
- Returning correct start times is more important than anything else in this task.
- summary_title must start with "Section <n>: " followed by a short topic.
- summary_content must state the main idea of the section. Style: %s.

Reply with this JSON shape and nothing else:
{"sections": [{"summary_title": "Section 1: ...", "start_time": "00:00:00", "end_time": "00:01:30", "summary_content": "..."}]}

Transcript (one "HH:MM:SS: text" line per entry):
---
%s
---`

const refinePrompt = `Rewrite the summary of the transcript excerpt below. Style: %s.

Reply with this JSON shape and nothing else:
{"summary": "..."}

Transcript excerpt:
---
%s
---`

func styleInstruction(style document.Style) string {
	switch style {
	case document.StyleBrief:
		return "brief, two or three sentences"
	case document.StyleConcise:
		return "concise, one short paragraph with only the main idea"
	case document.StyleFun:
		return "entertaining and lively with light humor, while staying accurate"
	default:
		return "detailed, covering every key point, example and conclusion"
	}
}

func buildSystem(language string) string {
	return fmt.Sprintf(systemPrompt, language)
}

func buildSegmentPrompt(transcriptText string, style document.Style) string {
	return fmt.Sprintf(segmentPrompt, styleInstruction(style), transcriptText)
}

func buildRefinePrompt(sectionTranscript string, style document.Style) string {
	return fmt.Sprintf(refinePrompt, styleInstruction(style), sectionTranscript)
}
