package engine

import "smartcloth/internal/models"

// Screen identifies a display page.
type Screen string

const (
	ScreenDashboard        Screen = "DASHBOARD"
	ScreenSemiDashboard    Screen = "SEMI_DASHBOARD"
	ScreenContainerRemoved Screen = "CONTAINER_REMOVED"
	ScreenPlaceContainer   Screen = "PLACE_CONTAINER"
	ScreenContainerPlaced  Screen = "CONTAINER_PLACED"
	ScreenChooseGroup      Screen = "CHOOSE_GROUP"
	ScreenGroupExamples    Screen = "GROUP_EXAMPLES"
	ScreenPlaceFood        Screen = "PLACE_FOOD"
	ScreenWeighedHint      Screen = "WEIGHED_HINT"
	ScreenConfirmAdd       Screen = "CONFIRM_ADD"
	ScreenConfirmDelete    Screen = "CONFIRM_DELETE"
	ScreenConfirmSave      Screen = "CONFIRM_SAVE"
	ScreenPlateAdded       Screen = "PLATE_ADDED"
	ScreenPlateDeleted     Screen = "PLATE_DELETED"
	ScreenRemoveFood       Screen = "REMOVE_FOOD"
	ScreenMealSaved        Screen = "MEAL_SAVED"
	ScreenBarcodeReading   Screen = "BARCODE_READING"
	ScreenBarcodeSearching Screen = "BARCODE_SEARCHING"
	ScreenProduct          Screen = "PRODUCT"
	ScreenError            Screen = "ERROR"
	ScreenCancel           Screen = "CANCEL"
	ScreenWarning          Screen = "WARNING"
	ScreenDeleteLogConfirm Screen = "DELETE_LOG_CONFIRM"
	ScreenDeleteLogResult  Screen = "DELETE_LOG_RESULT"
	ScreenUploading        Screen = "UPLOADING"
	ScreenNoInternet       Screen = "NO_INTERNET"
	ScreenCriticalStorage  Screen = "CRITICAL_STORAGE"
)

// SaveOutcome says where a saved meal ended up.
type SaveOutcome string

const (
	SaveNone           SaveOutcome = ""
	SaveFull           SaveOutcome = "FULL"
	SaveLocalHTTPError SaveOutcome = "LOCAL_HTTP_ERROR"
	SaveLocalNoWifi    SaveOutcome = "LOCAL_NO_WIFI"
	SaveLocalTimeout   SaveOutcome = "LOCAL_TIMEOUT"
	SaveLocalUnknown   SaveOutcome = "LOCAL_UNKNOWN"
)

// View is what the display is asked to render.
type View struct {
	Screen     Screen            `json:"screen"`
	State      State             `json:"state"`
	Message    string            `json:"message,omitempty"`
	Group      models.FoodGroup  `json:"group"`
	Processing models.Processing `json:"processing,omitempty"`
	Weight     float64           `json:"weight"`
	Plate      models.Nutrients  `json:"plate"`
	Meal       models.Meal       `json:"meal"`
	Diary      models.Diary      `json:"diary"`
	Product    *models.Product   `json:"product,omitempty"`
	Outcome    SaveOutcome       `json:"outcome,omitempty"`
}
