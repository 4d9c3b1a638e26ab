package assistant

import (
	"context"
	"fmt"
)

var (
	ErrResponseStatus  = fmt.Errorf("assistant gateway response status not ok")
	ErrInvalidResponse = fmt.Errorf("assistant response does not match the expected schema")
)

// ChatHistoryMessage is one turn of an assistant conversation.
type ChatHistoryMessage struct {
	Role     string `json:"role"`
	Content  string `json:"content"`
	ImageURL string `json:"image_url,omitempty"`
}

// ChatInput is the input of the multi-persona chat assistant.
type ChatInput struct {
	History  []ChatHistoryMessage `json:"history"`
	Message  string               `json:"message"`
	ImageURL string               `json:"image_url,omitempty"`
}

type ChatOutput struct {
	Tone     string `json:"tone"`
	Response string `json:"response" validate:"required"`
}

type ReadTextResult struct {
	Text  string `json:"text" validate:"required"`
	Audio string `json:"audio" validate:"required"`
}

type SignInterpretation struct {
	Text string `json:"text" validate:"required"`
}

type SignCards struct {
	SignCards []string `json:"sign_cards" validate:"required,min=1,dive,required"`
}

type EasyReadVersion struct {
	EasyReadVersion string `json:"easy_read_version" validate:"required"`
}

type SceneDescription struct {
	Description      string `json:"description" validate:"required"`
	AudioDescription string `json:"audio_description" validate:"required"`
}

type Reflection struct {
	Reflection string `json:"reflection" validate:"required"`
}

type ArticleSummary struct {
	AudioSummary    string   `json:"audio_summary" validate:"required"`
	EasyReadBullets []string `json:"easy_read_bullets" validate:"required,min=1,dive,required"`
	KeyFacts        []string `json:"key_facts" validate:"required,min=1,dive,required"`
	SignCards       []string `json:"sign_cards" validate:"required"`
}

type QuizQuestion struct {
	Question           string   `json:"question" validate:"required"`
	Options            []string `json:"options" validate:"required,len=4,dive,required"`
	CorrectAnswerIndex int      `json:"correct_answer_index" validate:"min=0,max=3"`
}

type LessonQuiz struct {
	Quiz []QuizQuestion `json:"quiz" validate:"required,min=1,dive"`
}

// Assistant wraps the hosted model gateway. Every response is decoded into
// a typed struct and validated against its schema before it is trusted.
type Assistant interface {
	Chat(ctx context.Context, input *ChatInput) (*ChatOutput, error)
	ReadTextFromImage(ctx context.Context, imageURL string) (*ReadTextResult, error)
	InterpretSignLanguage(ctx context.Context, videoURL string) (*SignInterpretation, error)
	GenerateSignCards(ctx context.Context, text string) (*SignCards, error)
	EasyRead(ctx context.Context, text string) (*EasyReadVersion, error)
	DescribeSurroundings(ctx context.Context, imageURL string) (*SceneDescription, error)
	DailyReflection(ctx context.Context, mood, note string) (*Reflection, error)
	SummarizeArticle(ctx context.Context, articleText string) (*ArticleSummary, error)
	GenerateLessonQuiz(ctx context.Context, lessonText string) (*LessonQuiz, error)
}
