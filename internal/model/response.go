package model

type ErrorResponse struct {
	Error string `json:"error"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type PingResponse struct {
	Message string `json:"message"`
}

type RootResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type AnalysesEnvelope struct {
	Status string   `json:"status"`
	Data   []Record `json:"data"`
}

type StatisticsEnvelope struct {
	Status string      `json:"status"`
	Data   *Statistics `json:"data"`
}
