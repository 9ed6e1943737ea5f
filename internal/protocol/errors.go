package protocol

// 错误码
const (
	ErrCodeUnknown        = 1000
	ErrCodeInvalidMsg     = 1001
	ErrCodeNoPlayers      = 2001
	ErrCodeTooMany        = 2002
	ErrCodeGameStarted    = 2004 // 游戏已开始
	ErrCodeAlreadyDealt   = 2005
	ErrCodeDeck           = 2006
	ErrCodeGameNotStart   = 3001
	ErrCodeNotYourTurn    = 3002
	ErrCodeInvalidCards   = 3003
	ErrCodeCardNotFound   = 3004
	ErrCodePlayNotFound   = 3005
	ErrCodeNotDasar       = 3006
	ErrCodePlayerNotFound = 3007
	ErrCodePlayerDead     = 3008
	ErrCodeGameFinished   = 3009
	ErrCodeNoAlive        = 3010
)

// ErrorMessages 错误码对应的消息
var ErrorMessages = map[int]string{
	ErrCodeUnknown:        "未知错误",
	ErrCodeInvalidMsg:     "无效的操作",
	ErrCodeNoPlayers:      "至少需要两名玩家",
	ErrCodeTooMany:        "玩家人数过多",
	ErrCodeGameStarted:    "游戏已开始",
	ErrCodeAlreadyDealt:   "已经发过牌了",
	ErrCodeDeck:           "牌堆中的牌不够",
	ErrCodeGameNotStart:   "游戏尚未开始",
	ErrCodeNotYourTurn:    "还没轮到您",
	ErrCodeInvalidCards:   "无效的组合",
	ErrCodeCardNotFound:   "手牌中没有这些牌",
	ErrCodePlayNotFound:   "桌上没有这个组合",
	ErrCodeNotDasar:       "只能接 dasar",
	ErrCodePlayerNotFound: "玩家不存在",
	ErrCodePlayerDead:     "您已出局",
	ErrCodeGameFinished:   "游戏已结束",
	ErrCodeNoAlive:        "没有存活的玩家",
}
