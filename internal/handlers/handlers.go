package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"scaffold-service/internal/database"
	"scaffold-service/internal/logger"
	"scaffold-service/internal/models"
)

const (
	DefaultLimit        = 10
	MaxLimit            = 100
	DefaultSortOrder    = "desc"
	DefaultRecordSortBy = "created_at"
)

var AllowedRecordSortByFields = map[string]bool{
	"module":     true,
	"file_name":  true,
	"created_at": true,
}

// ListScaffoldRecords godoc
// @Summary List scaffold history
// @Description Get a paginated list of the modules scaffolded through the create operation.
// @Tags scaffolds
// @Produce  json
// @Param   limit      query  int     false  "Page size (default 10, max 100)"
// @Param   offset     query  int     false  "Offset (default 0)"
// @Param   sort_by    query  string  false  "Sort field: module, file_name or created_at"
// @Param   sort_order query  string  false  "asc or desc"
// @Param   module     query  string  false  "Only records of this module"
// @Success 200 {object} models.PaginatedResponse{data=[]models.ScaffoldRecord} "Successfully retrieved scaffold records"
// @Failure 400 {object} models.APIError "Bad Request (see 'code' in response for specifics like VALIDATION_ERROR)"
// @Failure 500 {object} models.APIError "Internal Server Error (see 'code' in response for specifics like INTERNAL_SERVER_ERROR)"
// @Router /admin/base/sys/menu/scaffolds [get]
func ListScaffoldRecords(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", strconv.Itoa(DefaultLimit))
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeValidation, "Invalid limit parameter: not a number.", gin.H{"limit": limitStr})
		return
	}
	if limit <= 0 {
		limit = DefaultLimit
	} else if limit > MaxLimit {
		limit = MaxLimit
	}

	offsetStr := c.DefaultQuery("offset", "0")
	offset, err := strconv.Atoi(offsetStr)
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeValidation, "Invalid offset parameter: not a number.", gin.H{"offset": offsetStr})
		return
	}
	if offset < 0 {
		offset = 0
	}

	sortBy := c.DefaultQuery("sort_by", DefaultRecordSortBy)
	if _, isValid := AllowedRecordSortByFields[sortBy]; !isValid {
		allowedFields := make([]string, 0, len(AllowedRecordSortByFields))
		for k := range AllowedRecordSortByFields {
			allowedFields = append(allowedFields, k)
		}
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeValidation, "Invalid sort_by field for scaffold records.", gin.H{"field": sortBy, "allowed": allowedFields})
		return
	}

	sortOrder := strings.ToLower(c.DefaultQuery("sort_order", DefaultSortOrder))
	if sortOrder != "asc" && sortOrder != "desc" {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeValidation, "Invalid sort_order value. Must be 'asc' or 'desc'.", gin.H{"value": c.Query("sort_order")})
		return
	}

	query := database.GetDB().WithContext(c.Request.Context()).Model(&models.ScaffoldRecord{})
	if module := c.Query("module"); module != "" {
		query = query.Where("module = ?", module)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.WithComponent("handlers").WithError(err).Error("Failed to count scaffold records")
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError, "Failed to list scaffold records", nil)
		return
	}

	records := []models.ScaffoldRecord{}
	if err := query.Order(sortBy + " " + sortOrder).Limit(limit).Offset(offset).Find(&records).Error; err != nil {
		logger.WithComponent("handlers").WithError(err).Error("Failed to list scaffold records")
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError, "Failed to list scaffold records", nil)
		return
	}

	RespondWithSuccess(c, http.StatusOK, models.PaginatedResponse{
		Data:   records,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}

// GetScaffoldRecord godoc
// @Summary Get a scaffold record by ID
// @Description Get one entry of the scaffold history using its UUID.
// @Tags scaffolds
// @Produce  json
// @Param   id     path   string     true  "Scaffold Record ID (UUID)"
// @Success 200 {object} models.ScaffoldRecord "Successfully retrieved scaffold record"
// @Failure 400 {object} models.APIError "Bad Request (see 'code' in response for specifics like INVALID_ID_FORMAT)"
// @Failure 404 {object} models.APIError "Not Found (see 'code' in response for specifics like NOT_FOUND)"
// @Failure 500 {object} models.APIError "Internal Server Error (see 'code' in response for specifics like INTERNAL_SERVER_ERROR)"
// @Router /admin/base/sys/menu/scaffolds/{id} [get]
func GetScaffoldRecord(c *gin.Context) {
	idStr := c.Param("id")
	recordID, err := uuid.Parse(idStr)
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeInvalidIDFormat, "Invalid ID format for scaffold record ID", gin.H{"id": idStr})
		return
	}

	db := database.GetDB()
	var record models.ScaffoldRecord
	if err := db.WithContext(c.Request.Context()).First(&record, "id = ?", recordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			RespondWithError(c, http.StatusNotFound, models.ErrorCodeNotFound, "Scaffold record not found", gin.H{"id": recordID})
		} else {
			RespondWithError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError, "Failed to get scaffold record", nil)
		}
		return
	}
	RespondWithSuccess(c, http.StatusOK, record)
}
