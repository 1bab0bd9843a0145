package tools

import (
	"context"
	"encoding/json"
	"errors"

	einotool "github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"

	"storyteller/internal/model"
	"storyteller/internal/service"
)

type ImageTool struct {
	svc *service.ImageService
}

type ImageToolArgs struct {
	Prompt         string `json:"prompt"`
	Language       string `json:"language"`
	AnimationStyle string `json:"animation_style"`
}

type ImageToolResp struct {
	ImageURL string `json:"image_url"`
	Fallback bool   `json:"fallback"`
	Message  string `json:"message,omitempty"`
}

func NewImageTool(svc *service.ImageService) *ImageTool {
	return &ImageTool{svc: svc}
}

func (t *ImageTool) Info(ctx context.Context) (*schema.ToolInfo, error) {
	params := map[string]*schema.ParameterInfo{
		"prompt":          {Type: schema.String, Required: true, Desc: "图片提示词"},
		"language":        {Type: schema.String, Required: false, Desc: "目标语言显示名"},
		"animation_style": {Type: schema.String, Required: false, Desc: "动画风格名"},
	}
	return &schema.ToolInfo{
		Name:        "image_generate",
		Desc:        "按指定动画风格与语言文化元素生成一张1024x1024插画，失败时返回占位图",
		ParamsOneOf: schema.NewParamsOneOfByParams(params),
	}, nil
}

func (t *ImageTool) InvokableRun(ctx context.Context, argumentsInJSON string, opts ...einotool.Option) (string, error) {
	var args ImageToolArgs
	if err := json.Unmarshal([]byte(argumentsInJSON), &args); err != nil {
		return "", err
	}
	if args.Prompt == "" {
		return "", errors.New("prompt required")
	}

	result, err := t.svc.GenerateImage(ctx, model.ImageRequest{
		Prompt:         args.Prompt,
		Language:       args.Language,
		AnimationStyle: args.AnimationStyle,
	})
	if err != nil {
		return "", err
	}

	b, err := json.Marshal(ImageToolResp{
		ImageURL: result.URL,
		Fallback: result.Fallback,
		Message:  result.Message,
	})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

var _ einotool.InvokableTool = (*ImageTool)(nil)
