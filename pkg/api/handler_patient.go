package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/labtrail/labtrail/ent"
)

func (s *Server) listPatients(c *gin.Context) {
	patients, err := s.deps.Patients.List(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	out := make([]gin.H, 0, len(patients))
	for _, p := range patients {
		out = append(out, gin.H{
			"id":         p.ID,
			"name":       p.FullName,
			"created_at": p.CreatedAt,
			"updated_at": p.UpdatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"patients": out})
}

func (s *Server) listPatientReports(c *gin.Context) {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid patient id"})
		return
	}

	reports, err := s.deps.Reports.ListByPatient(c.Request.Context(), currentUser(c).ID, patientID, adminMode(c))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	out := make([]gin.H, 0, len(reports))
	for _, r := range reports {
		out = append(out, reportSummary(r))
	}
	c.JSON(http.StatusOK, gin.H{"reports": out})
}

// getReport returns one report with its lab results.
func (s *Server) getReport(c *gin.Context) {
	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report id"})
		return
	}

	rep, err := s.deps.Reports.Get(c.Request.Context(), currentUser(c).ID, reportID, adminMode(c))
	if err != nil {
		mapServiceError(c, err)
		return
	}

	body := reportSummary(rep)
	results := make([]gin.H, 0, len(rep.Edges.Results))
	for _, res := range rep.Edges.Results {
		results = append(results, gin.H{
			"id":                 res.ID,
			"parameter_name":     res.ParameterName,
			"value_numeric":      res.ValueNumeric,
			"value_text":         res.ValueText,
			"unit":               res.Unit,
			"reference_low":      res.ReferenceLow,
			"reference_high":     res.ReferenceHigh,
			"reference_text":     res.ReferenceText,
			"out_of_range":       res.OutOfRange,
			"analyte_id":         res.AnalyteID,
			"mapping_source":     res.MappingSource,
			"mapping_confidence": res.MappingConfidence,
		})
	}
	body["results"] = results
	c.JSON(http.StatusOK, body)
}

func reportSummary(r *ent.Report) gin.H {
	return gin.H{
		"id":             r.ID,
		"patient_id":     r.PatientID,
		"filename":       r.Filename,
		"status":         r.Status,
		"effective_date": r.EffectiveDate,
		"lab_name":       r.LabName,
		"model_name":     r.ModelName,
		"created_at":     r.CreatedAt,
	}
}
