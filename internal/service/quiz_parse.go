package service

import (
	"career_compass_backend/internal/model"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var errNoJSONObject = errors.New("no JSON object found in model output")

// Question 一道四选一的题目
type Question struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// StripCodeFences 去掉模型输出外层的 ``` 或 ```json 标记
func StripCodeFences(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// 语言标记可能独占一行，也可能和内容在同一行
	tagEnd := 0
	for tagEnd < len(s) && isFenceTagByte(s[tagEnd]) {
		tagEnd++
	}
	if tagEnd > 0 && (tagEnd == len(s) || strings.IndexByte(" \t\r\n[{", s[tagEnd]) >= 0) {
		s = s[tagEnd:]
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func isFenceTagByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' || c == '-' || c == '+'
}

// ParseQuestions 解码题目列表，只保留包含非空 question 且恰好 4 个选项的条目
func ParseQuestions(text string) ([]Question, error) {
	var raw any
	if err := json.Unmarshal([]byte(StripCodeFences(text)), &raw); err != nil {
		return nil, err
	}

	var items []any
	switch v := raw.(type) {
	case []any:
		items = v
	case map[string]any:
		list, ok := v["questions"].([]any)
		if !ok {
			return nil, fmt.Errorf("questions list missing from model output")
		}
		items = list
	default:
		return nil, fmt.Errorf("unexpected JSON type %T for questions", raw)
	}

	questions := make([]Question, 0, len(items))
	for _, item := range items {
		if q, ok := toQuestion(item); ok {
			questions = append(questions, q)
		}
	}
	return questions, nil
}

func toQuestion(item any) (Question, bool) {
	entry, ok := item.(map[string]any)
	if !ok {
		return Question{}, false
	}
	text, ok := entry["question"].(string)
	if !ok || strings.TrimSpace(text) == "" {
		return Question{}, false
	}
	rawOptions, ok := entry["options"].([]any)
	if !ok || len(rawOptions) != 4 {
		return Question{}, false
	}

	options := make([]string, 0, 4)
	for _, opt := range rawOptions {
		options = append(options, optionText(opt))
	}
	return Question{Question: strings.TrimSpace(text), Options: options}, true
}

// optionText 把任意类型的选项转成展示文本
func optionText(opt any) string {
	switch o := opt.(type) {
	case string:
		return o
	case nil:
		return ""
	case map[string]any:
		for _, key := range []string{"text", "option", "label", "value"} {
			if v, ok := o[key].(string); ok {
				return v
			}
		}
	case float64, bool:
		return fmt.Sprint(o)
	}
	b, err := json.Marshal(opt)
	if err != nil {
		return fmt.Sprint(opt)
	}
	return string(b)
}

// ExtractJSONObject 用括号配对扫描找出文本中第一个完整的顶层 JSON 对象，
// 忽略字符串字面量里的括号。配对成功但不是合法 JSON 时从其结尾之后继续查找，
// 不会进入它的内部；第一个 '{' 无法配对时，后面的括号都在它内部，直接失败
func ExtractJSONObject(text string) (string, error) {
	offset := 0
	for {
		start := strings.IndexByte(text[offset:], '{')
		if start < 0 {
			return "", errNoJSONObject
		}
		start += offset
		end := matchBrace(text, start)
		if end < 0 {
			return "", errNoJSONObject
		}
		candidate := text[start : end+1]
		if json.Valid([]byte(candidate)) {
			return candidate, nil
		}
		offset = end + 1
	}
}

// matchBrace 返回与 text[start] 处 '{' 配对的 '}' 下标，找不到返回 -1
func matchBrace(text string, start int) int {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// Suggestion 解码后的评估结果，缺失字段取零值
type Suggestion struct {
	Suggestion string
	Reason     string
	Alternates []model.AlternateSuggestion
}

// DecodeSuggestion 按变体结构解码 JSON 对象
func DecodeSuggestion(raw string, shape ResultShape) (*Suggestion, error) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errNoJSONObject
	}

	if shape == ShapeGeneral {
		return &Suggestion{
			Suggestion: stringField(obj, "suggestion"),
			Reason:     stringField(obj, "reason"),
			Alternates: []model.AlternateSuggestion{},
		}, nil
	}

	s := &Suggestion{
		Suggestion: stringField(obj, "primary_suggestion"),
		Reason:     stringField(obj, "primary_reason"),
		Alternates: []model.AlternateSuggestion{},
	}
	if list, ok := obj["alternate_suggestions"].([]any); ok {
		for _, item := range list {
			entry, ok := item.(map[string]any)
			if !ok {
				continue
			}
			s.Alternates = append(s.Alternates, model.AlternateSuggestion{
				Career: stringField(entry, "career"),
				Reason: stringField(entry, "reason"),
			})
		}
	}
	return s, nil
}

func stringField(obj map[string]any, key string) string {
	switch v := obj[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// DecodeAlternates 解析存储的备选建议，内容非法时返回空列表
func DecodeAlternates(stored string) []model.AlternateSuggestion {
	out := []model.AlternateSuggestion{}
	if strings.TrimSpace(stored) == "" {
		return out
	}
	if err := json.Unmarshal([]byte(stored), &out); err != nil || out == nil {
		return []model.AlternateSuggestion{}
	}
	return out
}
