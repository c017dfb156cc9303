package model

import (
	"time"
)

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Message is a single entry of a conversation.
type Message struct {
	Role    Role   `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content"`
}

// Action selects the instruction template and the response-handling policy
// the backend applies to a request.
type Action string

const (
	ActionChat                  Action = "chat"
	ActionGenerateQuiz          Action = "generate_quiz"
	ActionGenerateFlashcards    Action = "generate_flashcards"
	ActionGenerateMindMap       Action = "generate_mindmap"
	ActionGenerateNotes         Action = "generate_notes"
	ActionGenerateInfographic   Action = "generate_infographic"
	ActionGeneratePodcast       Action = "generate_podcast"
	ActionSummarize             Action = "summarize"
	ActionGenerateWritingPrompt Action = "generate_writing_prompt"
	ActionEvaluateWriting       Action = "evaluate_writing"
)

// Actions lists every supported action in a stable order.
var Actions = []Action{
	ActionChat,
	ActionGenerateQuiz,
	ActionGenerateFlashcards,
	ActionGenerateMindMap,
	ActionGenerateNotes,
	ActionGenerateInfographic,
	ActionGeneratePodcast,
	ActionSummarize,
	ActionGenerateWritingPrompt,
	ActionEvaluateWriting,
}

// Streamed reports whether the upstream answer for the action is passed
// through as a live event stream. Every other action is buffered.
func (a Action) Streamed() bool {
	return a == ActionChat
}

// Valid reports whether a is one of the known actions.
func (a Action) Valid() bool {
	for _, known := range Actions {
		if a == known {
			return true
		}
	}
	return false
}

// ActionRequest is the body accepted by the action router.
type ActionRequest struct {
	Messages []Message `json:"messages" validate:"required,min=1,dive"`
	Action   Action    `json:"action" validate:"required,action"`
	Topic    string    `json:"topic,omitempty" validate:"max=500"`
	Language string    `json:"language,omitempty" validate:"max=10"`
}

// QuizQuestion is one multiple-choice question of a generated quiz.
type QuizQuestion struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// Quiz is the artifact produced by generate_quiz.
type Quiz struct {
	Title     string         `json:"title"`
	Questions []QuizQuestion `json:"questions"`
}

// Flashcard is one card of the array produced by generate_flashcards.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// MindMapNode is a node of a mind map tree.
type MindMapNode struct {
	ID       string        `json:"id"`
	Label    string        `json:"label"`
	Children []MindMapNode `json:"children,omitempty"`
}

// MindMap is the artifact produced by generate_mindmap.
type MindMap struct {
	Title string        `json:"title"`
	Nodes []MindMapNode `json:"nodes"`
}

// PodcastLesson is the artifact produced by generate_podcast.
type PodcastLesson struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Duration string `json:"duration"`
}

// WritingPrompt is the artifact produced by generate_writing_prompt.
type WritingPrompt struct {
	Topic  string   `json:"topic"`
	Prompt string   `json:"prompt"`
	Hints  []string `json:"hints"`
}

// Note is a study note saved by a learner.
type Note struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Topic      string    `json:"topic,omitempty"`
	IsUploaded bool      `json:"is_uploaded"`
	CreatedAt  time.Time `json:"created_at"`
}

// Language is a response language a learner can pick.
type Language struct {
	Code           string `json:"code"`
	Name           string `json:"name"`
	NativeName     string `json:"native_name"`
	IsSignLanguage bool   `json:"is_sign_language,omitempty"`
}
