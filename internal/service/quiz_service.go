package service

import (
	"bytes"
	"career_compass_backend/internal/model"
	"career_compass_backend/internal/util"
	"career_compass_backend/pkg/logger"
	"career_compass_backend/pkg/monitoring"
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// QuizStage 一次评估请求所处的阶段
type QuizStage string

const (
	StageReceived     QuizStage = "RECEIVED"
	StagePromptBuilt  QuizStage = "PROMPT_BUILT"
	StageModelInvoked QuizStage = "MODEL_INVOKED"
	StageParsed       QuizStage = "PARSED"
	StageValidated    QuizStage = "VALIDATED"
	StagePersisted    QuizStage = "PERSISTED"
	StageFailed       QuizStage = "FAILED"
)

// EvaluationFailedMessage 评估失败时返回给客户端的固定消息
const EvaluationFailedMessage = "Server error, please try again later"

type QuizResultStore interface {
	Create(ctx context.Context, result *model.QuizResult) error
	ListByUser(ctx context.Context, userID uint, quizType model.QuizType) ([]model.QuizResult, error)
}

type QuizService struct {
	Generator TextGenerator
	Results   QuizResultStore
	Cache     QuestionCache
}

func NewQuizService(generator TextGenerator, results QuizResultStore, cache QuestionCache) *QuizService {
	return &QuizService{
		Generator: generator,
		Results:   results,
		Cache:     cache,
	}
}

func (s *QuizService) variant(quizType model.QuizType) (QuizVariant, error) {
	v, ok := LookupQuizVariant(quizType)
	if !ok {
		return QuizVariant{}, util.Validation("Unknown quiz type")
	}
	return v, nil
}

// GenerateQuestions 生成题目。生成或解析失败不视为错误，返回空列表
func (s *QuizService) GenerateQuestions(ctx context.Context, quizType model.QuizType) ([]Question, error) {
	v, err := s.variant(quizType)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		cached, ok, err := s.Cache.Get(ctx, quizType)
		if err != nil {
			logger.Log.Warn("question cache read failed", zap.String("quiz_type", string(quizType)), zap.Error(err))
		} else if ok && len(cached) > 0 {
			return cached, nil
		}
	}

	text, err := s.Generator.Complete(ctx, "generate_questions", quizSystemPrompt, v.QuestionPrompt())
	if err != nil {
		logger.Log.Error("question generation failed", zap.String("quiz_type", string(quizType)), zap.Error(err))
		return []Question{}, nil
	}

	questions, err := ParseQuestions(text)
	if err != nil {
		logger.Log.Error("could not parse generated questions",
			zap.String("quiz_type", string(quizType)),
			zap.Error(err),
		)
		return []Question{}, nil
	}

	if s.Cache != nil && len(questions) > 0 {
		if err := s.Cache.Set(ctx, quizType, questions); err != nil {
			logger.Log.Warn("question cache write failed", zap.String("quiz_type", string(quizType)), zap.Error(err))
		}
	}
	return questions, nil
}

// Evaluation 评估成功后的结构化建议
type Evaluation struct {
	ResultID uint
	Variant  QuizVariant
	Suggestion
}

type GeneralSuggestionPayload struct {
	Suggestion string `json:"suggestion"`
	Reason     string `json:"reason"`
	Msg        string `json:"msg,omitempty"`
}

type SubjectSuggestionPayload struct {
	PrimarySuggestion    string                      `json:"primary_suggestion"`
	PrimaryReason        string                      `json:"primary_reason"`
	AlternateSuggestions []model.AlternateSuggestion `json:"alternate_suggestions"`
	Msg                  string                      `json:"msg,omitempty"`
}

// Payload 按变体结构返回响应体
func (e *Evaluation) Payload() interface{} {
	if e.Variant.Shape == ShapeGeneral {
		return GeneralSuggestionPayload{Suggestion: e.Suggestion.Suggestion, Reason: e.Reason}
	}
	return SubjectSuggestionPayload{
		PrimarySuggestion:    e.Suggestion.Suggestion,
		PrimaryReason:        e.Reason,
		AlternateSuggestions: e.Alternates,
	}
}

// FailurePayload 评估失败时的响应体，保持与成功时相同的字段
func FailurePayload(shape ResultShape) interface{} {
	if shape == ShapeGeneral {
		return GeneralSuggestionPayload{Suggestion: EvaluationFailedMessage, Msg: EvaluationFailedMessage}
	}
	return SubjectSuggestionPayload{
		PrimarySuggestion:    EvaluationFailedMessage,
		AlternateSuggestions: []model.AlternateSuggestion{},
		Msg:                  EvaluationFailedMessage,
	}
}

// EvaluateAnswers 构造提示词、调用生成式服务、解析校验后保存结果
func (s *QuizService) EvaluateAnswers(ctx context.Context, userID uint, quizType model.QuizType, answers json.RawMessage) (*Evaluation, error) {
	stage := StageReceived
	v, err := s.variant(quizType)
	if err != nil {
		return nil, err
	}

	compact, ok := normalizeAnswers(answers)
	if !ok {
		return nil, util.Validation("No answers received")
	}

	fail := func(kind error, cause error) (*Evaluation, error) {
		logger.Log.Error("quiz evaluation failed",
			zap.Uint("user_id", userID),
			zap.String("quiz_type", string(quizType)),
			zap.String("stage", string(stage)),
			zap.Error(cause),
		)
		monitoring.QuizEvaluationCounter.WithLabelValues(string(quizType), string(StageFailed)).Inc()
		return nil, util.WrapError(kind, EvaluationFailedMessage, cause)
	}

	prompt := v.EvaluationPrompt(string(compact))
	stage = StagePromptBuilt

	text, err := s.Generator.Complete(ctx, "evaluate_answers", quizSystemPrompt, prompt)
	if err != nil {
		return fail(util.ErrEvaluation, err)
	}
	stage = StageModelInvoked

	raw, err := ExtractJSONObject(text)
	if err != nil {
		return fail(util.ErrEvaluation, err)
	}
	stage = StageParsed

	suggestion, err := DecodeSuggestion(raw, v.Shape)
	if err != nil {
		return fail(util.ErrEvaluation, err)
	}
	stage = StageValidated

	alternates, err := json.Marshal(suggestion.Alternates)
	if err != nil {
		return fail(util.ErrEvaluation, err)
	}

	result := &model.QuizResult{
		UserID:               userID,
		Answers:              datatypes.JSON(compact),
		Suggestion:           suggestion.Suggestion,
		Reason:               suggestion.Reason,
		AlternateSuggestions: string(alternates),
		QuizType:             v.Type,
		CreatedAt:            time.Now().UTC(),
	}
	if err := s.Results.Create(ctx, result); err != nil {
		return fail(util.ErrStore, err)
	}
	stage = StagePersisted
	monitoring.QuizEvaluationCounter.WithLabelValues(string(quizType), string(stage)).Inc()

	return &Evaluation{ResultID: result.ID, Variant: v, Suggestion: *suggestion}, nil
}

// normalizeAnswers 压缩 JSON；null、空字符串、空对象和空数组都视为没有作答
func normalizeAnswers(answers json.RawMessage) ([]byte, bool) {
	trimmed := bytes.TrimSpace(answers)
	if len(trimmed) == 0 {
		return nil, false
	}

	var decoded any
	if err := json.Unmarshal(trimmed, &decoded); err != nil {
		return nil, false
	}
	switch v := decoded.(type) {
	case nil:
		return nil, false
	case string:
		if len(bytes.TrimSpace([]byte(v))) == 0 {
			return nil, false
		}
	case map[string]any:
		if len(v) == 0 {
			return nil, false
		}
	case []any:
		if len(v) == 0 {
			return nil, false
		}
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return nil, false
	}
	return buf.Bytes(), true
}

// QuizResultView 历史记录中的一条结果
type QuizResultView struct {
	ID                   uint                        `json:"id"`
	QuizType             model.QuizType              `json:"quiz_type"`
	Answers              json.RawMessage             `json:"answers"`
	Suggestion           string                      `json:"suggestion"`
	Reason               string                      `json:"reason"`
	AlternateSuggestions []model.AlternateSuggestion `json:"alternate_suggestions"`
	CreatedAt            time.Time                   `json:"created_at"`
}

// ListResults 返回用户的历史结果，按时间倒序，可按变体过滤
func (s *QuizService) ListResults(ctx context.Context, userID uint, quizType string) ([]QuizResultView, error) {
	filter := model.QuizType(quizType)
	if filter != "" {
		if _, ok := LookupQuizVariant(filter); !ok {
			return nil, util.Validation("Unknown quiz type")
		}
	}

	rows, err := s.Results.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, util.WrapError(util.ErrStore, "Could not load quiz results", err)
	}

	views := make([]QuizResultView, 0, len(rows))
	for _, r := range rows {
		answers := json.RawMessage(r.Answers)
		if len(answers) == 0 || !json.Valid(answers) {
			answers = json.RawMessage("null")
		}
		views = append(views, QuizResultView{
			ID:                   r.ID,
			QuizType:             r.QuizType,
			Answers:              answers,
			Suggestion:           r.Suggestion,
			Reason:               r.Reason,
			AlternateSuggestions: DecodeAlternates(r.AlternateSuggestions),
			CreatedAt:            r.CreatedAt,
		})
	}
	return views, nil
}
