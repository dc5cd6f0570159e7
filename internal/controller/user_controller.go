package controller

import (
	"career_compass_backend/internal/service"
	"career_compass_backend/internal/util"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserController 处理用户资料和头像相关的HTTP请求
type UserController struct {
	UserService *service.UserService
}

// NewUserController 创建一个新的用户控制器实例
func NewUserController(userService *service.UserService) *UserController {
	return &UserController{
		UserService: userService,
	}
}

// GetProfile godoc
// @Summary 获取个人资料
// @Tags 用户
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} service.Profile "成功"
// @Failure 401 {object} util.Response "未授权"
// @Failure 404 {object} util.Response "用户不存在"
// @Router /profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	profile, err := c.UserService.GetProfile(ctx.Request.Context(), claims.UserID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}

// UploadPhoto godoc
// @Summary 上传头像
// @Description 支持 png、jpg、jpeg、gif
// @Tags 用户
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   photo formData file true "头像文件"
// @Success 200 {object} map[string]string "上传成功"
// @Failure 400 {object} util.Response "文件缺失或类型不允许"
// @Failure 401 {object} util.Response "未授权"
// @Router /upload-photo [post]
func (c *UserController) UploadPhoto(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var header *multipart.FileHeader
	if file, err := ctx.FormFile("photo"); err == nil {
		header = file
	}

	filename, err := c.UserService.UploadPhoto(ctx.Request.Context(), claims.UserID, header)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"msg":      "File uploaded successfully",
		"filename": filename,
	})
}

// ServeUpload godoc
// @Summary 读取已上传的文件
// @Tags 用户
// @Produce  octet-stream
// @Param   filename path string true "存储文件名"
// @Success 200 {file} binary "文件内容"
// @Failure 404 {object} util.Response "文件不存在"
// @Router /uploads/{filename} [get]
func (c *UserController) ServeUpload(ctx *gin.Context) {
	rc, contentType, err := c.UserService.OpenPhoto(ctx.Request.Context(), ctx.Param("filename"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	defer rc.Close()

	ctx.DataFromReader(http.StatusOK, -1, contentType, rc, nil)
}
