package handlers

import (
	"fmt"
	"strings"
)

// defaultSlideTopic stands in when a request gives no slide context.
const defaultSlideTopic = "general presentation topics"

func chatPrompt(question, slideTitle string) string {
	return fmt.Sprintf(`You are a friendly presentation assistant helping an audience member.
The current slide is about: %s.
Answer the question below in 2-3 short, polite sentences. You may draw on any domain
(science, business, history, technology) but stay concise and approachable.

Question: %s`, slideTitle, question)
}

func summaryPrompt(title, description string, existingPoints []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `You are summarizing a presentation slide titled "%s".`, title)
	b.WriteString("\n")
	if description != "" {
		fmt.Fprintf(&b, "Slide content: %s\n", description)
	}
	if len(existingPoints) > 0 {
		b.WriteString("Do NOT repeat the wording of these existing key points:\n")
		for _, p := range existingPoints {
			fmt.Fprintf(&b, "- %s\n", p)
		}
	}
	fmt.Fprintf(&b, `
Respond with ONLY a JSON object, no commentary, in exactly this shape:
{"description": "...", "keyPoints": ["...", "...", "...", "..."]}

Rules:
- "description" is one short sentence (at most %d words) explaining the slide with a simple analogy.
- "keyPoints" is exactly 4 short imperative phrases, each at most %d words.`, descriptionMaxWords, keyPointMaxWords)
	return b.String()
}

func polishPrompt(sentence, slideTitle string) string {
	context := ""
	if slideTitle != "" {
		context = fmt.Sprintf(" The sentence belongs to a slide titled %q.", slideTitle)
	}
	return fmt.Sprintf(`Rewrite the following sentence so it sounds warm and natural when spoken
aloud to an audience.%s Keep the meaning intact. Output ONLY the rewritten sentence,
nothing else — no quotes, no explanation, no extra lines.

Sentence: %s`, context, sentence)
}
