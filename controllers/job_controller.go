package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"recruitdash/models"
	"recruitdash/services"
	"recruitdash/utils"
)

// JobController handles the job/interview creation form endpoints: the draft
// lifecycle, the interview structure editing, skill cascades, the JD file and
// the final submission to the remote backend.
type JobController struct {
	gateway    *services.GatewayService
	validation *services.JobValidationService
	structure  *services.InterviewStructureService
	payload    *services.PayloadService
	hydration  *services.DraftHydrationService
	jdUpload   *services.JDUploadService
	siteOrigin string
	logger     *utils.Logger
}

// NewJobController creates a new job controller. jdUpload may be nil when S3
// is not configured; the upload endpoints then report the feature unavailable.
func NewJobController(gateway *services.GatewayService, jdUpload *services.JDUploadService, siteOrigin string) *JobController {
	return &JobController{
		gateway:    gateway,
		validation: services.NewJobValidationService(),
		structure:  services.NewInterviewStructureService(),
		payload:    services.NewPayloadService(),
		hydration:  services.NewDraftHydrationService(),
		jdUpload:   jdUpload,
		siteOrigin: siteOrigin,
		logger:     utils.NewLogger("job-controller"),
	}
}

func identityFrom(c *gin.Context) services.Identity {
	return services.Identity{
		UserID:   c.GetString("userId"),
		UserType: c.GetString("userType"),
	}
}

// GetCreationFilters returns every master list the creation form needs.
func (jc *JobController) GetCreationFilters(c *gin.Context) {
	filters, err := jc.gateway.FetchCreationFilters(c.Request.Context(), identityFrom(c))
	if err != nil {
		jc.logger.Error("Failed to load creation filters", err)
		utils.InternalServerError(c, "Failed to load creation filters", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Creation filters loaded", filters)
}

// NewDraft returns a fresh draft with create-mode defaults applied.
func (jc *JobController) NewDraft(c *gin.Context) {
	draft := models.NewJobDraft()
	utils.SuccessResponse(c, http.StatusOK, "Draft initialized", draft)
}

// HydrateDraft loads an existing interview into a draft for modify mode. Two
// backend calls populate the draft; the second one wins on shared fields.
func (jc *JobController) HydrateDraft(c *gin.Context) {
	preInterviewID := c.Param("preInterviewId")
	if preInterviewID == "" {
		utils.BadRequestError(c, "preInterviewId is required", nil)
		return
	}
	user := identityFrom(c)

	attempt, err := jc.gateway.FetchAttemptDetails(c.Request.Context(), user, []string{preInterviewID})
	if err != nil {
		utils.InternalServerError(c, "Failed to load interview details", err)
		return
	}

	draft := models.NewJobDraft()
	draft.Mode = models.ModeModify
	draft.PreInterviewID = preInterviewID
	jc.hydration.ApplyAttemptDetails(draft, attempt)

	edit, err := jc.gateway.FetchEditDetails(c.Request.Context(), user, []string{preInterviewID})
	if err != nil {
		utils.InternalServerError(c, "Failed to load interview details", err)
		return
	}
	jc.hydration.ApplyEditDetails(draft, edit)

	utils.SuccessResponse(c, http.StatusOK, "Draft loaded", gin.H{
		"draft":            draft,
		"attemptedDetails": attempt.AttemptedDetails,
	})
}

// UpdateSkillsRequest carries a skill-field change against the current draft.
// Field is one of required, ultraMandatory or goodToHave.
type UpdateSkillsRequest struct {
	Draft  models.JobDraft `json:"draft"`
	Field  string          `json:"field" binding:"required"`
	Values []string        `json:"values"`
}

// UpdateSkills applies one skill selection change and returns the draft with
// the cascade applied to the dependent fields.
func (jc *JobController) UpdateSkills(c *gin.Context) {
	var req UpdateSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(c, "Invalid request format", err)
		return
	}

	draft := req.Draft
	switch req.Field {
	case "required":
		draft.SetRequiredSkills(req.Values)
	case "ultraMandatory":
		draft.SetUltraMandatorySkills(req.Values)
	case "goodToHave":
		draft.SetGoodToHaveSkills(req.Values)
	default:
		utils.BadRequestError(c, "Unknown skill field", nil)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Skills updated", draft)
}

// AddSkillRequest adds one custom skill to the master catalog. Catalog is the
// caller's current skill list, used for the duplicate check.
type AddSkillRequest struct {
	Name    string         `json:"name" binding:"required"`
	Catalog []models.Skill `json:"catalog"`
}

// AddSkill registers a custom skill with the backend after the duplicate
// check against the caller's catalog.
func (jc *JobController) AddSkill(c *gin.Context) {
	var req AddSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(c, "Invalid request format", err)
		return
	}

	catalog := services.NewSkillCatalogService(req.Catalog, nil)
	if !catalog.SkillAddAllowed(req.Name) {
		utils.ValidationAlert(c, "Skill already exists or is empty")
		return
	}

	if err := jc.gateway.AddSkill(c.Request.Context(), identityFrom(c), req.Name); err != nil {
		utils.InternalServerError(c, "Failed to add skill", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Skill added", nil)
}

// SectionRequest carries the draft whose interview structure is being edited.
type SectionRequest struct {
	Draft models.JobDraft `json:"draft"`
	Index int             `json:"index"`
}

// AddSection appends the next interview section when the gate checks pass;
// gate failures come back as dismissible alerts with the exact message.
func (jc *JobController) AddSection(c *gin.Context) {
	var req SectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(c, "Invalid request format", err)
		return
	}

	draft := req.Draft
	if err := jc.structure.AddSection(&draft); err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			utils.ValidationAlert(c, verr.Message)
			return
		}
		utils.InternalServerError(c, "Failed to add section", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Section added", draft)
}

// RemoveSection deletes the section at the given index and renumbers the
// remaining ones.
func (jc *JobController) RemoveSection(c *gin.Context) {
	var req SectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(c, "Invalid request format", err)
		return
	}

	draft := req.Draft
	if err := jc.structure.RemoveSection(&draft, req.Index); err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			utils.ValidationAlert(c, verr.Message)
			return
		}
		utils.BadRequestError(c, "Failed to remove section", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Section removed", draft)
}

// TopicsRequest asks for interview topics of the selected subjects.
type TopicsRequest struct {
	SubjectIDs []string `json:"subjectIds" binding:"required"`
}

// GetTopics returns the topic lists for the selected subjects, grouped by
// subject id.
func (jc *JobController) GetTopics(c *gin.Context) {
	var req TopicsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(c, "Invalid request format", err)
		return
	}

	topics, err := jc.gateway.FetchTopics(c.Request.Context(), identityFrom(c), req.SubjectIDs)
	if err != nil {
		utils.InternalServerError(c, "Failed to load topics", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Topics loaded", topics)
}

// SubmitJob runs the full validation pipeline over the posted draft and, on
// success, assembles and submits the backend payload. Validation failures
// return 422 with the message for the dismissible alert.
func (jc *JobController) SubmitJob(c *gin.Context) {
	var draft models.JobDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.BadRequestError(c, "Invalid request format", err)
		return
	}
	user := identityFrom(c)

	structure, err := jc.validation.Validate(&draft)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			utils.ValidationAlert(c, verr.Message)
			return
		}
		utils.InternalServerError(c, "Validation failed", err)
		return
	}

	payload := jc.payload.BuildPayload(&draft, structure, user.UserID, user.UserType)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()
	if err := jc.gateway.CreateInterview(ctx, payload); err != nil {
		jc.logger.Error("Interview submission failed", err, map[string]interface{}{
			"jobName": draft.JobName,
		})
		utils.InternalServerError(c, "Failed to submit interview", err)
		return
	}

	jc.logger.Info("Interview submitted", map[string]interface{}{
		"jobName": draft.JobName,
		"mode":    draft.Mode,
	})
	utils.SuccessResponse(c, http.StatusOK, "Interview submitted", gin.H{
		"pendingInterviews": payload.PendingInterviews,
	})
}

// PublishRequest selects between plain publish (val=1) and the create-link
// variant (val=2).
type PublishRequest struct {
	Val int `json:"val" binding:"required"`
}

// Publish publishes an interview; for the create-link variant the response
// carries the shareable job link.
func (jc *JobController) Publish(c *gin.Context) {
	preInterviewID := c.Param("preInterviewId")
	var req PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(c, "Invalid request format", err)
		return
	}

	if err := jc.gateway.Publish(c.Request.Context(), identityFrom(c), preInterviewID, req.Val); err != nil {
		utils.InternalServerError(c, "Failed to publish interview", err)
		return
	}

	data := gin.H{}
	if req.Val == 2 {
		data["jobLink"] = services.BuildJobLink(jc.siteOrigin, preInterviewID)
	}
	utils.SuccessResponse(c, http.StatusOK, "Interview published", data)
}

// DeleteJob removes an interview.
func (jc *JobController) DeleteJob(c *gin.Context) {
	preInterviewID := c.Param("preInterviewId")
	if err := jc.gateway.DeletePreInterview(c.Request.Context(), identityFrom(c), preInterviewID); err != nil {
		utils.InternalServerError(c, "Failed to delete interview", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Interview deleted", nil)
}

// GetAssociatedCorporate returns the corporate list and the interview's
// current associations.
func (jc *JobController) GetAssociatedCorporate(c *gin.Context) {
	preInterviewID := c.Param("preInterviewId")
	data, err := jc.gateway.FetchAssociatedCorporate(c.Request.Context(), identityFrom(c), preInterviewID)
	if err != nil {
		utils.InternalServerError(c, "Failed to load corporate associations", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Corporate associations loaded", data)
}

// AssociateCorporateRequest carries the corporate user ids to link.
type AssociateCorporateRequest struct {
	CorporateUserIDs []string `json:"corporateUserId" binding:"required"`
}

// AssociateCorporate links the selected corporate users to the interview.
func (jc *JobController) AssociateCorporate(c *gin.Context) {
	preInterviewID := c.Param("preInterviewId")
	var req AssociateCorporateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(c, "Invalid request format", err)
		return
	}

	if err := jc.gateway.AssociateCorporate(c.Request.Context(), identityFrom(c), preInterviewID, req.CorporateUserIDs); err != nil {
		utils.InternalServerError(c, "Failed to associate corporate users", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Corporate users associated", nil)
}

// UploadJD accepts a multipart JD file, validates type and size, and stores
// it under the company/job object key.
func (jc *JobController) UploadJD(c *gin.Context) {
	if jc.jdUpload == nil {
		utils.InternalServerError(c, "JD upload is not configured", nil)
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		utils.BadRequestError(c, "No file provided", err)
		return
	}
	companyID := c.PostForm("companyId")
	jobName := c.PostForm("jobName")
	if companyID == "" || jobName == "" {
		utils.BadRequestError(c, "companyId and jobName are required", nil)
		return
	}

	if _, err := services.ValidateJDFile(file.Filename, file.Size); err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			utils.ValidationAlert(c, verr.Message)
			return
		}
		utils.BadRequestError(c, "Invalid file", err)
		return
	}

	src, err := file.Open()
	if err != nil {
		utils.InternalServerError(c, "Failed to read file", err)
		return
	}
	defer src.Close()
	content, err := io.ReadAll(src)
	if err != nil {
		utils.InternalServerError(c, "Failed to read file", err)
		return
	}

	jdFile, err := jc.jdUpload.Upload(file.Filename, content, companyID, jobName)
	if err != nil {
		jc.logger.Error("JD upload failed", err)
		utils.InternalServerError(c, "Failed to upload file", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "File uploaded", jdFile)
}

// JDDocumentRequest asks for the job description rendered as a Word document.
type JDDocumentRequest struct {
	JobName         string `json:"jobName" binding:"required"`
	DescriptionHTML string `json:"descriptionHtml"`
}

// DownloadJDDocument renders the job description into a .docx attachment.
func (jc *JobController) DownloadJDDocument(c *gin.Context) {
	var req JDDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(c, "Invalid request format", err)
		return
	}

	path := filepath.Join(os.TempDir(),
		"jd_"+strconv.FormatInt(time.Now().UnixNano(), 10)+".docx")
	if err := utils.GenerateJDDocument(req.JobName, req.DescriptionHTML, path); err != nil {
		utils.InternalServerError(c, "Failed to generate document", err)
		return
	}
	defer os.Remove(path)

	c.FileAttachment(path, req.JobName+"_JD.docx")
}
