package controller

import (
	"career_compass_backend/internal/service"
	"career_compass_backend/internal/util"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// EvaluateRequest 提交的作答内容，answers 原样嵌入提示词
// swagger:model EvaluateRequest
type EvaluateRequest struct {
	Answers json.RawMessage `json:"answers" swaggertype:"object"`
}

// Generate godoc
// @Summary 生成测验题目
// @Description 各变体的路由后缀为 ""、-12maths、-12biology、-12arts、-12commerce；生成失败时返回空列表
// @Tags 测验
// @Produce  json
// @Success 200 {object} map[string][]service.Question "题目列表"
// @Router /generate-quiz [get]
func (c *QuizController) Generate(variant service.QuizVariant) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		questions, err := c.QuizService.GenerateQuestions(ctx.Request.Context(), variant.Type)
		if err != nil {
			util.HandleError(ctx, err)
			return
		}
		util.Success(ctx, gin.H{"questions": questions})
	}
}

// Evaluate godoc
// @Summary 评估测验作答
// @Description 10th 返回 suggestion/reason，12th 变体返回 primary_suggestion/primary_reason/alternate_suggestions
// @Tags 测验
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body EvaluateRequest true "作答内容"
// @Success 200 {object} service.SubjectSuggestionPayload "评估结果"
// @Failure 400 {object} util.Response "没有作答"
// @Failure 401 {object} util.Response "未授权"
// @Failure 500 {object} service.SubjectSuggestionPayload "评估失败"
// @Router /evaluate-quiz [post]
func (c *QuizController) Evaluate(variant service.QuizVariant) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims := util.GetUserFromContext(ctx)
		if claims == nil {
			util.Unauthorized(ctx)
			return
		}

		var req EvaluateRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			util.BadRequest(ctx, "No answers received")
			return
		}

		eval, err := c.QuizService.EvaluateAnswers(ctx.Request.Context(), claims.UserID, variant.Type, req.Answers)
		if err != nil {
			if errors.Is(err, util.ErrEvaluation) || errors.Is(err, util.ErrStore) {
				// 服务层已记录错误，响应体保持变体的字段结构
				ctx.JSON(http.StatusInternalServerError, service.FailurePayload(variant.Shape))
				return
			}
			util.HandleError(ctx, err)
			return
		}

		util.Success(ctx, eval.Payload())
	}
}

// ListResults godoc
// @Summary 查询历史测验结果
// @Description 按时间倒序返回，可用 quiz_type 过滤
// @Tags 测验
// @Produce  json
// @Security ApiKeyAuth
// @Param   quiz_type query string false "测验类型" Enums(10th, 12th_science_maths, 12th_science_biology, 12th_arts, 12th_commerce)
// @Success 200 {object} map[string][]service.QuizResultView "历史结果"
// @Failure 400 {object} util.Response "未知的测验类型"
// @Failure 401 {object} util.Response "未授权"
// @Router /user-quiz-results [get]
func (c *QuizController) ListResults(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	results, err := c.QuizService.ListResults(ctx.Request.Context(), claims.UserID, ctx.Query("quiz_type"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"results": results})
}

// ListVariants godoc
// @Summary 列出支持的测验变体
// @Tags 测验
// @Produce  json
// @Success 200 {object} map[string][]service.QuizVariant "变体列表"
// @Router /quiz-variants [get]
func (c *QuizController) ListVariants(ctx *gin.Context) {
	util.Success(ctx, gin.H{"variants": service.QuizVariants()})
}
