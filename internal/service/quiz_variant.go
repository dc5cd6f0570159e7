package service

import (
	"career_compass_backend/internal/model"
	"fmt"
	"strings"
)

// ResultShape 模型返回的建议结构
type ResultShape int

const (
	// ShapeGeneral {suggestion, reason}
	ShapeGeneral ResultShape = iota
	// ShapeSubject {primary_suggestion, primary_reason, alternate_suggestions[]}
	ShapeSubject
)

// QuizVariant 描述一个测验变体：路由后缀、提示词与期望的职业范围
type QuizVariant struct {
	Type        model.QuizType `json:"quiz_type"`
	RouteSuffix string         `json:"route_suffix"`
	Title       string         `json:"title"`
	Shape       ResultShape    `json:"-"`
	Audience    string         `json:"-"`
	Focus       string         `json:"-"`
	Careers     []string       `json:"careers"`
}

const questionCount = 10

var quizVariants = []QuizVariant{
	{
		Type:        model.QuizGeneral,
		RouteSuffix: "",
		Title:       "10th Grade Stream Selection",
		Shape:       ShapeGeneral,
		Audience:    "a 10th grade student in India choosing a stream for classes 11 and 12",
		Focus:       "interests, favourite subjects, working style and long-term aspirations",
		Careers:     []string{"Science", "Commerce", "Arts"},
	},
	{
		Type:        model.QuizScienceMaths,
		RouteSuffix: "-12maths",
		Title:       "12th Science (PCM) Career Quiz",
		Shape:       ShapeSubject,
		Audience:    "a 12th grade science student with Physics, Chemistry and Mathematics",
		Focus:       "problem solving, mathematics, physics, technology and design",
		Careers: []string{
			"Software Engineer", "Mechanical Engineer", "Civil Engineer", "Electrical Engineer",
			"Data Scientist", "Architect", "Physicist", "Pilot", "Actuary",
		},
	},
	{
		Type:        model.QuizScienceBiology,
		RouteSuffix: "-12biology",
		Title:       "12th Science (PCB) Career Quiz",
		Shape:       ShapeSubject,
		Audience:    "a 12th grade science student with Physics, Chemistry and Biology",
		Focus:       "life sciences, healthcare, research and the environment",
		Careers: []string{
			"Doctor", "Dentist", "Pharmacist", "Nurse", "Physiotherapist", "Veterinarian",
			"Biotechnologist", "Geneticist", "Environmental Scientist", "Psychologist",
		},
	},
	{
		Type:        model.QuizArts,
		RouteSuffix: "-12arts",
		Title:       "12th Arts / Humanities Career Quiz",
		Shape:       ShapeSubject,
		Audience:    "a 12th grade humanities student",
		Focus:       "society, history, language, creativity, law and public service",
		Careers: []string{
			"Lawyer", "Journalist", "Psychologist", "Historian", "Civil Servant", "Teacher",
			"Social Worker", "Designer", "Economist", "Archaeologist",
		},
	},
	{
		Type:        model.QuizCommerce,
		RouteSuffix: "-12commerce",
		Title:       "12th Commerce Career Quiz",
		Shape:       ShapeSubject,
		Audience:    "a 12th grade commerce student",
		Focus:       "business, finance, accounting, markets and management",
		Careers: []string{
			"Chartered Accountant", "Financial Analyst", "Investment Banker", "Company Secretary",
			"Marketing Manager", "HR Manager", "Entrepreneur", "Economist", "Management Consultant",
		},
	},
}

// QuizVariants 返回全部支持的测验变体
func QuizVariants() []QuizVariant {
	out := make([]QuizVariant, len(quizVariants))
	copy(out, quizVariants)
	return out
}

// LookupQuizVariant 按标签查找测验变体
func LookupQuizVariant(quizType model.QuizType) (QuizVariant, bool) {
	for _, v := range quizVariants {
		if v.Type == quizType {
			return v, true
		}
	}
	return QuizVariant{}, false
}

const quizSystemPrompt = "You are an experienced career counsellor for Indian school students. " +
	"Always answer with valid JSON only, without markdown or commentary."

// QuestionPrompt 生成题目的提示词
func (v QuizVariant) QuestionPrompt() string {
	return fmt.Sprintf(
		"Create %d multiple-choice questions for %s. "+
			"The questions should reveal the student's %s. "+
			"Each question must have exactly 4 short options and no correct answer. "+
			`Return a JSON array like [{"question": "...", "options": ["A", "B", "C", "D"]}].`,
		questionCount, v.Audience, v.Focus,
	)
}

// EvaluationPrompt 根据作答内容生成评估提示词，answers 原样嵌入
func (v QuizVariant) EvaluationPrompt(answers string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The following are quiz answers from %s:\n%s\n\n", v.Audience, answers)

	switch v.Shape {
	case ShapeGeneral:
		fmt.Fprintf(&b, "Based on these answers, recommend the single best stream among: %s. ", strings.Join(v.Careers, ", "))
		b.WriteString(`Respond in JSON: {"suggestion": "<stream>", "reason": "<two or three sentences>"}`)
	default:
		fmt.Fprintf(&b, "Based on these answers, suggest the most suitable career. Prefer careers such as: %s. ", strings.Join(v.Careers, ", "))
		b.WriteString(`Respond in JSON: {"primary_suggestion": "<career>", "primary_reason": "<why>", ` +
			`"alternate_suggestions": [{"career": "<career>", "reason": "<why>"}]} with two or three alternates.`)
	}
	return b.String()
}
