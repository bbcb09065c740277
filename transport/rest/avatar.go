package rest

import (
	"fmt"

	"github.com/buzkaaclicker/useravatar"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

const avatarFormField = "avatar"

type AvatarController struct {
	Backend useravatar.Backend
	// Optional.
	Metrics *Metrics
}

func (c *AvatarController) InstallTo(app *fiber.App) {
	app.All("/", preflightHandler, c.serveAvatar)
}

func (c *AvatarController) serveAvatar(ctx *fiber.Ctx) error {
	// Method points into the reused request buffer, labels must own theirs.
	method := utils.CopyString(ctx.Method())
	err := c.handleAvatar(ctx)
	c.Metrics.observeRequest(method, err)
	return err
}

func (c *AvatarController) handleAvatar(ctx *fiber.Ctx) error {
	client := c.Backend.Connect(ctx.Get(fiber.HeaderAuthorization))

	user, err := client.Users.CurrentUser(ctx.Context())
	if err != nil {
		return useravatar.BackendFailure(err)
	}
	requestLog(ctx).WithField("user_id", user.Id).Debugln("Resolved user.")

	if ctx.Method() == fiber.MethodPost {
		return c.serveUpload(ctx, client, user)
	}
	return c.serveCurrentAvatar(ctx, client, user)
}

func (c *AvatarController) serveUpload(ctx *fiber.Ctx, client useravatar.Client, user useravatar.User) error {
	form, err := ctx.MultipartForm()
	if err != nil {
		return useravatar.Validation(err)
	}
	files := form.File[avatarFormField]
	if len(files) == 0 {
		return useravatar.ErrNoFile
	}
	fileHeader := files[0]

	file, err := fileHeader.Open()
	if err != nil {
		return useravatar.BackendFailure(fmt.Errorf("open form file: %w", err))
	}
	defer file.Close()

	key := useravatar.AvatarKey(user.Id, fileHeader.Filename)
	object := useravatar.Object{
		Name:        fileHeader.Filename,
		ContentType: fileHeader.Header.Get(fiber.HeaderContentType),
		Size:        fileHeader.Size,
		Body:        file,
	}
	err = client.Objects.Upload(ctx.Context(), useravatar.AvatarBucket, key, object, true)
	if err != nil {
		return useravatar.BackendFailure(err)
	}
	c.Metrics.addUploadBytes(fileHeader.Size)

	publicUrl := client.Objects.PublicUrl(useravatar.AvatarBucket, key)

	affected, err := client.Profiles.SetAvatarUrl(ctx.Context(), user.Id, publicUrl)
	if err != nil {
		return useravatar.BackendFailure(err)
	}
	if affected == 0 {
		requestLog(ctx).
			WithField("user_id", user.Id).
			Warningln("No profile row to store avatar url in.")
	}

	type UploadResponse struct {
		Message   string `json:"message"`
		AvatarUrl string `json:"avatar_url"`
	}
	setCorsHeaders(ctx)
	return ctx.JSON(UploadResponse{
		Message:   "Avatar updated successfully",
		AvatarUrl: publicUrl,
	})
}

func (c *AvatarController) serveCurrentAvatar(ctx *fiber.Ctx, client useravatar.Client, user useravatar.User) error {
	avatarUrl, err := client.Profiles.AvatarUrl(ctx.Context(), user.Id)
	if err != nil {
		return useravatar.BackendFailure(err)
	}
	if avatarUrl != nil && *avatarUrl == "" {
		avatarUrl = nil
	}

	type AvatarResponse struct {
		AvatarUrl *string `json:"avatar_url"`
	}
	setCorsHeaders(ctx)
	return ctx.JSON(AvatarResponse{AvatarUrl: avatarUrl})
}
