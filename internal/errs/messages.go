package errs

// Client-facing messages.
const (
	MsgInvalidBody      = "El cuerpo de la petición no es un JSON válido"
	MsgNothingToSave    = "No hay datos para actualizar"
	MsgRouteNotFound    = "Ruta no encontrada"
	MsgMethodNotAllowed = "Método no permitido"

	MsgInvalidUserID    = "ID de usuario inválido"
	MsgUserNotFound     = "Usuario no encontrado"
	MsgUserNameRequired = "El nombre es requerido"
	MsgUserNameEmpty    = "El nombre no puede estar vacío"
	MsgEmailRequired    = "El email es requerido"
	MsgEmailEmpty       = "El email no puede estar vacío"
	MsgEmailInvalid     = "El formato del email es inválido"
	MsgEmailTaken       = "El email ya está en uso"
	MsgUserHasSales     = "No se puede eliminar el usuario porque tiene ventas asociadas"

	MsgInvalidProductID    = "ID de producto inválido"
	MsgProductNotFound     = "Producto no encontrado"
	MsgProductNameRequired = "El nombre del producto es requerido"
	MsgProductNameEmpty    = "El nombre del producto no puede estar vacío"
	MsgPriceInvalid        = "El precio debe ser un número válido mayor o igual a cero"
	MsgSKUTooShort         = "El SKU debe tener al menos 3 caracteres"
	MsgSKUTaken            = "El SKU ya está en uso"
	MsgProductHasSales     = "No se puede eliminar el producto porque tiene ventas asociadas"

	MsgInvalidSaleID    = "ID de venta inválido"
	MsgSaleNotFound     = "Venta no encontrada"
	MsgQuantityInvalid  = "La cantidad debe ser un número positivo"
	MsgUnitPriceInvalid = "El precio unitario debe ser mayor o igual a cero"

	MsgDuplicate       = "El registro ya existe"
	MsgAmountTooLarge  = "El importe excede el máximo permitido"
	MsgValueOutOfRange = "Valor numérico fuera de rango"
	MsgInternalError   = "Error interno del servidor"
)

// Summaries reported in the error field of a 500 response.
const (
	MsgListUsersFailed  = "Error al obtener usuarios"
	MsgGetUserFailed    = "Error al obtener usuario"
	MsgCreateUserFailed = "Error al crear usuario"
	MsgUpdateUserFailed = "Error al actualizar usuario"
	MsgDeleteUserFailed = "Error al eliminar usuario"

	MsgListProductsFailed  = "Error al obtener productos"
	MsgGetProductFailed    = "Error al obtener producto"
	MsgCreateProductFailed = "Error al crear producto"
	MsgUpdateProductFailed = "Error al actualizar producto"
	MsgDeleteProductFailed = "Error al eliminar producto"

	MsgListSalesFailed  = "Error al obtener ventas"
	MsgGetSaleFailed    = "Error al obtener venta"
	MsgCreateSaleFailed = "Error al crear venta"
	MsgUpdateSaleFailed = "Error al actualizar venta"
	MsgDeleteSaleFailed = "Error al eliminar venta"
)

// Success messages.
const (
	MsgUserCreated = "Usuario creado exitosamente"
	MsgUserUpdated = "Usuario actualizado exitosamente"
	MsgUserDeleted = "Usuario eliminado exitosamente"

	MsgProductCreated = "Producto creado exitosamente"
	MsgProductUpdated = "Producto actualizado exitosamente"
	MsgProductDeleted = "Producto eliminado exitosamente"

	MsgSaleCreated = "Venta creada exitosamente"
	MsgSaleUpdated = "Venta actualizada exitosamente"
	MsgSaleDeleted = "Venta eliminada exitosamente"
)
