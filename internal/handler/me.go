package handler

import (
	"net/http"

	"github.com/hrm-dev/hr-workflow/backend/internal/domain"
)

func (h *Handler) GetMyInfo(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.Employee)
	h.successResponse(w, r, "获取个人信息成功", myInfo)
}
