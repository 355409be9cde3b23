// file: internals/features/gallery/controller/gallery_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"blackbear_backend/internals/errs"
	"blackbear_backend/internals/features/gallery/dto"
	"blackbear_backend/internals/features/gallery/service"
	helper "blackbear_backend/internals/helpers"
)

type GalleryController struct {
	service    *service.GalleryService
	uploadsDir string
}

func NewGalleryController(s *service.GalleryService, uploadsDir string) *GalleryController {
	return &GalleryController{service: s, uploadsDir: uploadsDir}
}

func (ctrl *GalleryController) GetAll(c *fiber.Ctx) error {
	items, err := ctrl.service.List()
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// Create accepts either a multipart "image" file or a hosted imageUrl in the
// body; whichever URL results is threaded into the service unchanged.
func (ctrl *GalleryController) Create(c *fiber.Ctx) error {
	var imageURL, title string

	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		title = c.FormValue("title")
		url, uerr := helper.SaveGalleryImage(fh, ctrl.uploadsDir)
		if uerr != nil {
			return uerr
		}
		imageURL = url
	} else {
		var in dto.GalleryRequest
		if berr := c.BodyParser(&in); berr != nil {
			return errs.NewValidation("Provide an image upload or a hosted image URL.")
		}
		imageURL = in.ImageURL
		title = in.Title
	}

	item, err := ctrl.service.Create(imageURL, title)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (ctrl *GalleryController) Delete(c *fiber.Ctx) error {
	item, err := ctrl.service.Delete(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(item)
}
