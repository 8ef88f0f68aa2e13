package gateway

import "fmt"

const (
	// defaultMood は気分が未指定の場合にプロンプトへ埋め込む値。
	defaultMood = "unknown"
	// defaultTitle はタイトルが未指定の場合にプロンプトへ埋め込む値。
	defaultTitle = "Untitled"
)

// reflectionPromptTemplate は振り返り生成のプロンプト。
// 引数は気分、タイトル、本文の順。語数の上限はモデルへの指示であり、出力側では検証しない。
const reflectionPromptTemplate = `Act as a supportive, mindful therapist and life coach.
Read the following journal entry and provide a brief, warm, and insightful reflection (max 100 words).
Validate the user's feelings (Mood: %s) and offer a gentle perspective or a question for self-discovery.

Journal Title: %s
Content: %s
`

// buildReflectionPrompt は日記エントリからプロンプトを組み立てる。
func buildReflectionPrompt(entry JournalEntry) string {
	mood := entry.Mood
	if mood == "" {
		mood = defaultMood
	}
	title := entry.Title
	if title == "" {
		title = defaultTitle
	}
	return fmt.Sprintf(reflectionPromptTemplate, mood, title, entry.Content)
}
